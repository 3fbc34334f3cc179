package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/motcentre/booking-service/internal/domain"
)

// appendQuery вставляет сообщение со следующим порядковым номером треда.
// Номер вычисляется в той же команде, поэтому порядок добавления
// сохраняется даже при совпадении timestamp-ов
const appendQuery = `
INSERT INTO messages (id, booking_id, seq, sender_name, content, is_staff, created_at)
SELECT ?, ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?
FROM messages
WHERE booking_id = ?
`

var messageColumns = []string{
	"id",
	"booking_id",
	"seq",
	"sender_name",
	"content",
	"is_staff",
	"created_at",
}

// Repository репозиторий сообщений в тредах бронирований
type Repository struct {
	db *sql.DB
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Append добавляет сообщение в конец треда бронирования
// Заполняет Seq присвоенным порядковым номером
func (r *Repository) Append(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	_, err := r.db.ExecContext(ctx, appendQuery,
		msg.ID,
		msg.BookingID,
		msg.SenderName,
		msg.Content,
		msg.IsStaff,
		msg.CreatedAt,
		msg.BookingID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	query, args, err := sq.Select("seq").
		From("messages").
		Where(sq.Eq{"id": msg.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build seq query: %v", ErrBuildQuery, err)
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&msg.Seq); err != nil {
		return nil, fmt.Errorf("%w: Append - read assigned seq: %v", ErrScanRow, err)
	}

	return msg, nil
}

// ListByBooking возвращает сообщения треда в порядке добавления
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"booking_id": bookingID}).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.BookingID,
			&msg.Seq,
			&msg.SenderName,
			&msg.Content,
			&msg.IsStaff,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByBooking: %v", ErrScanRow, err)
		}
		result = append(result, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// LastByBooking возвращает последнее по порядку добавления сообщение треда
func (r *Repository) LastByBooking(ctx context.Context, bookingID int64) (*domain.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"booking_id": bookingID}).
		OrderBy("seq DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LastByBooking - build select query: %v", ErrBuildQuery, err)
	}

	var msg domain.Message
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&msg.ID,
		&msg.BookingID,
		&msg.Seq,
		&msg.SenderName,
		&msg.Content,
		&msg.IsStaff,
		&msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoMessages
		}
		return nil, fmt.Errorf("%w: LastByBooking: %v", ErrScanRow, err)
	}

	return &msg, nil
}
