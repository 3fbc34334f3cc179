package conversations

import (
	"context"
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// BookingsRepository интерфейс репозитория бронирований,
// нужный сервису переписок
type BookingsRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	MarkRead(ctx context.Context, id int64) error
	IncrementUnread(ctx context.Context, id int64) error
}

// MessagesRepository интерфейс репозитория сообщений
type MessagesRepository interface {
	Append(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Message, error)
	LastByBooking(ctx context.Context, bookingID int64) (*domain.Message, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
