package find_bookings

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

type BookingsService interface {
	Find(ctx context.Context, email, reference string) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
