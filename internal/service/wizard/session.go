package wizard

import (
	"sync"
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// session состояние одной сессии мастера бронирования
// Все поля защищены мьютексом; наружу отдаются только снимки
type session struct {
	mu sync.Mutex

	id          string
	step        domain.WizardStep
	vehicle     *domain.VehicleRecord
	appointment *domain.AppointmentSelection
	customer    domain.CustomerDetails

	// submitInFlight гарантирует не более одной отправки одновременно
	submitInFlight bool

	// completed устанавливается после успешной отправки; сессия терминальна
	completed        bool
	bookingID        int64
	bookingReference string

	createdAt time.Time
	updatedAt time.Time
}

// Snapshot неизменяемый снимок состояния сессии
type Snapshot struct {
	ID          string
	Step        domain.WizardStep
	Vehicle     *domain.VehicleRecord
	Appointment *domain.AppointmentSelection
	Customer    domain.CustomerDetails

	SubmitInFlight bool
	Completed      bool

	BookingID        int64
	BookingReference string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// hasCompleteAppointment проверяет, что выбраны и дата, и слот
// Дата без слота — промежуточное состояние шага 2
func (s *session) hasCompleteAppointment() bool {
	return s.appointment != nil && s.appointment.TimeSlot != ""
}

// canReach проверяет, что данные всех предыдущих шагов заполнены
func (s *session) canReach(step domain.WizardStep) bool {
	switch step {
	case domain.StepVehicle:
		return true
	case domain.StepAppointment:
		return s.vehicle != nil
	case domain.StepCustomer:
		return s.vehicle != nil && s.hasCompleteAppointment()
	default:
		return false
	}
}

// snapshot создает снимок под уже взятым мьютексом
func (s *session) snapshot() Snapshot {
	snap := Snapshot{
		ID:               s.id,
		Step:             s.step,
		Customer:         s.customer,
		SubmitInFlight:   s.submitInFlight,
		Completed:        s.completed,
		BookingID:        s.bookingID,
		BookingReference: s.bookingReference,
		CreatedAt:        s.createdAt,
		UpdatedAt:        s.updatedAt,
	}

	if s.vehicle != nil {
		vehicle := *s.vehicle
		snap.Vehicle = &vehicle
	}
	if s.appointment != nil {
		appointment := *s.appointment
		snap.Appointment = &appointment
	}

	return snap
}
