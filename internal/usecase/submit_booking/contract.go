package submit_booking

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/integrations/notifier"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

// WizardService интерфейс сервиса мастера бронирования
type WizardService interface {
	BeginSubmit(ctx context.Context, sessionID string) (wizard.Snapshot, error)
	CompleteSubmit(ctx context.Context, sessionID string, bookingID int64, bookingReference string) (wizard.Snapshot, error)
	AbortSubmit(ctx context.Context, sessionID string)
}

// BookingsRepository интерфейс репозитория бронирований
type BookingsRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Notifier интерфейс приёмника уведомлений о событиях бронирования
type Notifier interface {
	NotifyAsync(n notifier.Notification)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
