package find_bookings

import "github.com/motcentre/booking-service/internal/domain"

// FindBookingsRequest HTTP request model
type FindBookingsRequest struct {
	Email     string `json:"email"`
	Reference string `json:"reference,omitempty"`
}

// BookingResponse HTTP модель бронирования для страницы поиска клиента
// Контактные данные не возвращаются: клиент их и так знает,
// а страница доступна без аутентификации
type BookingResponse struct {
	Reference      string `json:"reference"`
	Registration   string `json:"registration"`
	VehicleDetails string `json:"vehicleDetails"`
	BookingDate    string `json:"bookingDate"`
	StartTime      string `json:"startTime"`
	Status         string `json:"status"`
}

// FindBookingsResponse HTTP response model
type FindBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(bookings []*domain.Booking) *FindBookingsResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = BookingResponse{
			Reference:      b.Reference,
			Registration:   b.Registration,
			VehicleDetails: b.VehicleDetails,
			BookingDate:    b.BookingDate.Format(domain.DateFormat),
			StartTime:      b.StartTime.String(),
			Status:         string(b.Status),
		}
	}

	return &FindBookingsResponse{Bookings: items}
}
