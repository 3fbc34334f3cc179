package bookings

import (
	"context"
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// BookingsRepository интерфейс репозитория реестра бронирований
type BookingsRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
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
