package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// schema DDL реестра. Реестр живет в in-memory SQLite,
// состояние процесса теряется при перезапуске
const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	reference       TEXT NOT NULL DEFAULT '',
	customer_name   TEXT NOT NULL,
	customer_email  TEXT NOT NULL,
	customer_phone  TEXT NOT NULL,
	registration    TEXT NOT NULL,
	vehicle_details TEXT NOT NULL,
	booking_date    TIMESTAMP NOT NULL,
	start_time      TEXT NOT NULL,
	status          TEXT NOT NULL,
	notes           TEXT,
	unread_count    INTEGER NOT NULL DEFAULT 0,
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookings_reference ON bookings (reference);
CREATE INDEX IF NOT EXISTS idx_bookings_customer_email ON bookings (customer_email);

CREATE TABLE IF NOT EXISTS messages (
	id          TEXT PRIMARY KEY,
	booking_id  INTEGER NOT NULL REFERENCES bookings (id) ON DELETE CASCADE,
	seq         INTEGER NOT NULL,
	sender_name TEXT NOT NULL,
	content     TEXT NOT NULL,
	is_staff    INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	UNIQUE (booking_id, seq)
);

CREATE TABLE IF NOT EXISTS reports (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_name   TEXT NOT NULL,
	registration    TEXT NOT NULL,
	vehicle_details TEXT NOT NULL,
	report_type     TEXT NOT NULL,
	status          TEXT NOT NULL,
	reported_at     TIMESTAMP NOT NULL,
	created_at      TIMESTAMP NOT NULL
);
`

// Migrate применяет схему реестра
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("storage: enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("storage: apply schema: %w", err)
	}
	return nil
}
