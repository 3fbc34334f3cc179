package select_appointment

import (
	"context"
	"time"

	"github.com/motcentre/booking-service/internal/service/wizard"
)

type WizardService interface {
	SelectAppointment(ctx context.Context, sessionID string, date time.Time, timeSlot string) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
