package jump_step

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

type WizardService interface {
	JumpToStep(ctx context.Context, sessionID string, step domain.WizardStep) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
