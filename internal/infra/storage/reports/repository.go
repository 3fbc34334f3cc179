package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/motcentre/booking-service/internal/domain"
)

var reportColumns = []string{
	"id",
	"customer_name",
	"registration",
	"vehicle_details",
	"report_type",
	"status",
	"reported_at",
	"created_at",
}

// Repository репозиторий отчётов мастерской
type Repository struct {
	db *sql.DB
}

// NewRepository создает новый экземпляр репозитория отчётов
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create создает отчёт
func (r *Repository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	report.CreatedAt = time.Now().UTC()

	query, args, err := sq.Insert("reports").
		Columns(
			"customer_name",
			"registration",
			"vehicle_details",
			"report_type",
			"status",
			"reported_at",
			"created_at",
		).
		Values(
			report.CustomerName,
			report.Registration,
			report.VehicleDetails,
			report.Type,
			report.Status,
			report.ReportedAt,
			report.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - last insert id: %v", ErrExecQuery, err)
	}
	report.ID = id

	return report, nil
}

// GetByID получает отчёт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	query, args, err := sq.Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var report domain.Report
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&report.ID,
		&report.CustomerName,
		&report.Registration,
		&report.VehicleDetails,
		&report.Type,
		&report.Status,
		&report.ReportedAt,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrScanRow, err)
	}

	return &report, nil
}

// List возвращает отчёты с фильтрацией по типу, статусу и поисковой подстроке
func (r *Repository) List(ctx context.Context, filter domain.ReportsFilter) ([]*domain.Report, error) {
	builder := sq.Select(reportColumns...).
		From("reports").
		OrderBy("reported_at DESC", "id ASC")

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("LOWER(customer_name) LIKE ?", pattern),
			sq.Expr("LOWER(registration) LIKE ?", pattern),
			sq.Expr("LOWER(vehicle_details) LIKE ?", pattern),
		})
	}

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"report_type": *filter.Type})
	}

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.CustomerName,
			&report.Registration,
			&report.VehicleDetails,
			&report.Type,
			&report.Status,
			&report.ReportedAt,
			&report.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List: %v", ErrScanRow, err)
		}
		result = append(result, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// Delete удаляет отчёт. Отсутствующий ID не является ошибкой
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("reports").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
