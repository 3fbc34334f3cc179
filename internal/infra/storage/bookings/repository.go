package bookings

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

const referenceBase = 10000

var bookingColumns = []string{
	"id",
	"reference",
	"customer_name",
	"customer_email",
	"customer_phone",
	"registration",
	"vehicle_details",
	"booking_date",
	"start_time",
	"status",
	"notes",
	"unread_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий реестра бронирований
type Repository struct {
	db *sql.DB
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование и присваивает публичный номер
// Номер детерминированно выводится из идентификатора: MOT-10001, MOT-10002, ...
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query, args, err := sq.Insert("bookings").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"registration",
			"vehicle_details",
			"booking_date",
			"start_time",
			"status",
			"notes",
			"unread_count",
			"created_at",
			"updated_at",
		).
		Values(
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Registration,
			booking.VehicleDetails,
			booking.BookingDate,
			booking.StartTime,
			booking.Status,
			booking.Notes,
			booking.UnreadCount,
			booking.CreatedAt,
			booking.UpdatedAt,
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
	booking.ID = id
	booking.Reference = fmt.Sprintf("%s%d", domain.ReferencePrefix, referenceBase+id)

	query, args, err = sq.Update("bookings").
		Set("reference", booking.Reference).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build reference update: %v", ErrBuildQuery, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - assign reference: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := sq.Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает бронирования с фильтрацией
// Search ищет подстроку без учета регистра по имени клиента,
// регистрационному номеру и описанию автомобиля
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	builder := sq.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date ASC", "start_time ASC", "id ASC")

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("LOWER(customer_name) LIKE ?", pattern),
			sq.Expr("LOWER(registration) LIKE ?", pattern),
			sq.Expr("LOWER(vehicle_details) LIKE ?", pattern),
		})
	}

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, query, args)
}

// FindByEmail возвращает бронирования клиента по email (без учета регистра)
func (r *Repository) FindByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	query, args, err := sq.Select(bookingColumns...).
		From("bookings").
		Where(sq.Expr("LOWER(customer_email) = ?", strings.ToLower(strings.TrimSpace(email)))).
		OrderBy("booking_date ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, query, args)
}

// GetByReference получает бронирование по публичному номеру (без учета регистра)
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query, args, err := sq.Select(bookingColumns...).
		From("bookings").
		Where(sq.Expr("UPPER(reference) = ?", strings.ToUpper(strings.TrimSpace(reference)))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByReference: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Delete удаляет бронирование вместе с тредом сообщений
// Отсутствующий ID не является ошибкой
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("bookings").
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

// MarkRead обнуляет счётчик непрочитанных сообщений
// Идемпотентна; отсутствующий ID не является ошибкой
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	query, args, err := sq.Update("bookings").
		Set("unread_count", 0).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// IncrementUnread увеличивает счётчик непрочитанных сообщений
func (r *Repository) IncrementUnread(ctx context.Context, id int64) error {
	query, args, err := sq.Update("bookings").
		Set("unread_count", sq.Expr("unread_count + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementUnread - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: IncrementUnread - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) queryBookings(ctx context.Context, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
		}
		result = append(result, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var notes sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Registration,
		&booking.VehicleDetails,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&notes,
		&booking.UnreadCount,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		booking.Notes = &notes.String
	}

	return &booking, nil
}
