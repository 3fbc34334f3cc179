package update_customer

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

type WizardService interface {
	UpdateCustomer(ctx context.Context, sessionID string, customer domain.CustomerDetails) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
