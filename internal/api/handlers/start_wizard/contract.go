package start_wizard

import (
	"context"

	"github.com/motcentre/booking-service/internal/service/wizard"
)

type WizardService interface {
	StartSession(ctx context.Context) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
