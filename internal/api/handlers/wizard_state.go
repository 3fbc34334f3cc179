package handlers

import (
	"time"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

// WizardVehicleResponse автомобиль в составе состояния мастера
type WizardVehicleResponse struct {
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	FuelType     string `json:"fuelType"`
	Description  string `json:"description"`
}

// WizardAppointmentResponse выбранные дата и слот
type WizardAppointmentResponse struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot,omitempty"`
}

// WizardCustomerResponse контактные данные клиента
type WizardCustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// WizardStateResponse состояние сессии мастера бронирования
// Единый формат ответа для всех операций мастера
type WizardStateResponse struct {
	SessionID string `json:"sessionId"`
	Step      int    `json:"step"`

	Vehicle     *WizardVehicleResponse     `json:"vehicle,omitempty"`
	Appointment *WizardAppointmentResponse `json:"appointment,omitempty"`
	Customer    WizardCustomerResponse     `json:"customer"`

	Completed        bool   `json:"completed"`
	BookingID        int64  `json:"bookingId,omitempty"`
	BookingReference string `json:"bookingReference,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromWizardSnapshot конвертирует снимок сессии в HTTP response
func FromWizardSnapshot(snap wizard.Snapshot) *WizardStateResponse {
	resp := &WizardStateResponse{
		SessionID: snap.ID,
		Step:      int(snap.Step),
		Customer: WizardCustomerResponse{
			Name:  snap.Customer.Name,
			Email: snap.Customer.Email,
			Phone: snap.Customer.Phone,
			Notes: snap.Customer.Notes,
		},
		Completed:        snap.Completed,
		BookingID:        snap.BookingID,
		BookingReference: snap.BookingReference,
		CreatedAt:        snap.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        snap.UpdatedAt.Format(time.RFC3339),
	}

	if snap.Vehicle != nil {
		resp.Vehicle = &WizardVehicleResponse{
			Registration: snap.Vehicle.Registration,
			Make:         snap.Vehicle.Make,
			Model:        snap.Vehicle.Model,
			Year:         snap.Vehicle.Year,
			FuelType:     snap.Vehicle.FuelType,
			Description:  snap.Vehicle.Description(),
		}
	}

	if snap.Appointment != nil {
		resp.Appointment = &WizardAppointmentResponse{
			Date:     snap.Appointment.Date.Format(domain.DateFormat),
			TimeSlot: snap.Appointment.TimeSlot.String(),
		}
	}

	return resp
}
