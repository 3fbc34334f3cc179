package lookup_vehicle

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

type VehicleDirectory interface {
	Lookup(ctx context.Context, registration string) (*domain.VehicleRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
