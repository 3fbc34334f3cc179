package select_vehicle

import (
	"context"

	"github.com/motcentre/booking-service/internal/service/wizard"
)

type WizardService interface {
	SelectVehicle(ctx context.Context, sessionID, registration string) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
