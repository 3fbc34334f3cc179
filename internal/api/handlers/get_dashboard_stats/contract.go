package get_dashboard_stats

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

type BookingsService interface {
	Stats(ctx context.Context) (*domain.RegistryStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
