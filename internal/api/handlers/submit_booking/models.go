package submit_booking

import (
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// BookingResponse HTTP response model
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
	CreatedAt      string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}
