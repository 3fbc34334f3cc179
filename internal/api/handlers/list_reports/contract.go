package list_reports

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

type ReportsService interface {
	List(ctx context.Context, filter domain.ReportsFilter) ([]*domain.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
