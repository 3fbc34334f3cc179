package reports

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

// ReportsRepository интерфейс репозитория отчетов о тестах
type ReportsRepository interface {
	List(ctx context.Context, filter domain.ReportsFilter) ([]*domain.Report, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
