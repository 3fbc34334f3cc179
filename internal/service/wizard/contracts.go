package wizard

import (
	"context"
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// VehicleDirectory интерфейс справочника транспортных средств
type VehicleDirectory interface {
	Lookup(ctx context.Context, registration string) (*domain.VehicleRecord, error)
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
