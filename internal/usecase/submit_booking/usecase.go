package submit_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/integrations/notifier"
)

// UseCase use case отправки бронирования: забирает готовую сессию
// мастера, создает запись в реестре и уведомляет внешний приёмник
type UseCase struct {
	wizard   WizardService
	bookings BookingsRepository
	notifier Notifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(wizard WizardService, bookings BookingsRepository, n Notifier, logger Logger) *UseCase {
	return &UseCase{
		wizard:   wizard,
		bookings: bookings,
		notifier: n,
		logger:   logger,
	}
}

// Execute выполняет отправку бронирования.
// Валидация полноты сессии и защита от повторной отправки
// выполняются сервисом мастера в BeginSubmit; ошибки валидации
// пробрасываются вызывающему как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	snap, err := uc.wizard.BeginSubmit(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	scheduled := snap.Appointment

	booking := &domain.Booking{
		CustomerName:   strings.TrimSpace(snap.Customer.Name),
		CustomerEmail:  strings.TrimSpace(snap.Customer.Email),
		CustomerPhone:  strings.TrimSpace(snap.Customer.Phone),
		Registration:   snap.Vehicle.Registration,
		VehicleDetails: snap.Vehicle.Description(),
		BookingDate:    scheduled.Date,
		StartTime:      scheduled.TimeSlot,
		Status:         domain.StatusConfirmed,
	}
	if notes := strings.TrimSpace(snap.Customer.Notes); notes != "" {
		booking.Notes = &notes
	}

	created, err := uc.bookings.Create(ctx, booking)
	if err != nil {
		// Снимаем флаг отправки, чтобы пользователь мог повторить попытку
		uc.wizard.AbortSubmit(ctx, req.SessionID)
		uc.logger.Error("SubmitBooking: failed to create booking for session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	if _, err := uc.wizard.CompleteSubmit(ctx, req.SessionID, created.ID, created.Reference); err != nil {
		// Бронирование уже создано; сессия потеряна (например, истекла) -
		// фиксируем в логе и отдаем результат
		uc.logger.Warn("SubmitBooking: booking %s created but session %s not finalized: %v", created.Reference, req.SessionID, err)
	}

	uc.notifier.NotifyAsync(notifier.Notification{
		Title:       "Booking Confirmed!",
		Description: fmt.Sprintf("Your MOT test is booked for %s at %s. Reference: %s", created.BookingDate.Format("Monday, 2 January 2006"), created.StartTime, created.Reference),
		Severity:    notifier.SeveritySuccess,
	})

	uc.logger.Info("SubmitBooking: booking %s created for session %s", created.Reference, req.SessionID)

	return &Response{Booking: created}, nil
}
