package list_bookings

import (
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// BookingResponse HTTP модель бронирования в списке реестра
type BookingResponse struct {
	ID             int64   `json:"id"`
	Reference      string  `json:"reference"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	CustomerPhone  string  `json:"customerPhone"`
	Registration   string  `json:"registration"`
	VehicleDetails string  `json:"vehicleDetails"`
	BookingDate    string  `json:"bookingDate"`
	StartTime      string  `json:"startTime"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	UnreadCount    int     `json:"unreadCount"`
	CreatedAt      string  `json:"createdAt"`
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(bookings []*domain.Booking) *ListBookingsResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = BookingResponse{
			ID:             b.ID,
			Reference:      b.Reference,
			CustomerName:   b.CustomerName,
			CustomerEmail:  b.CustomerEmail,
			CustomerPhone:  b.CustomerPhone,
			Registration:   b.Registration,
			VehicleDetails: b.VehicleDetails,
			BookingDate:    b.BookingDate.Format(domain.DateFormat),
			StartTime:      b.StartTime.String(),
			Status:         string(b.Status),
			Notes:          b.Notes,
			UnreadCount:    b.UnreadCount,
			CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListBookingsResponse{
		Bookings: items,
		Total:    len(items),
	}
}
