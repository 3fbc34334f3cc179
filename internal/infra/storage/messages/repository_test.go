package messages_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/infra/storage"
	bookingsRepo "github.com/motcentre/booking-service/internal/infra/storage/bookings"
	"github.com/motcentre/booking-service/internal/infra/storage/messages"
	"github.com/motcentre/booking-service/pkg/types"
)

func newTestRepos(t *testing.T) (*messages.Repository, *bookingsRepo.Repository) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Migrate(context.Background(), db))

	return messages.NewRepository(db), bookingsRepo.NewRepository(db)
}

func createBooking(t *testing.T, repo *bookingsRepo.Repository) int64 {
	t.Helper()

	created, err := repo.Create(context.Background(), &domain.Booking{
		CustomerName:   "jane",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "07700900000",
		Registration:   "AB12CDE",
		VehicleDetails: "Ford Focus (2018)",
		BookingDate:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("10:00"),
		Status:         domain.StatusConfirmed,
	})
	require.NoError(t, err)
	return created.ID
}

func TestAppendOrderSurvivesTimestampCollision(t *testing.T) {
	msgs, bookings := newTestRepos(t)
	ctx := context.Background()
	bookingID := createBooking(t, bookings)

	// Все сообщения с одинаковым timestamp
	createdAt := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		saved, err := msgs.Append(ctx, &domain.Message{
			ID:         uuid.NewString(),
			BookingID:  bookingID,
			SenderName: "jane",
			Content:    fmt.Sprintf("message %d", i),
			CreatedAt:  createdAt,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), saved.Seq)
	}

	thread, err := msgs.ListByBooking(ctx, bookingID)
	require.NoError(t, err)
	require.Len(t, thread, 5)

	for i, msg := range thread {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
		assert.Equal(t, int64(i+1), msg.Seq)
	}
}

func TestLastByBooking(t *testing.T) {
	msgs, bookings := newTestRepos(t)
	ctx := context.Background()
	bookingID := createBooking(t, bookings)

	_, err := msgs.LastByBooking(ctx, bookingID)
	assert.ErrorIs(t, err, messages.ErrNoMessages)

	now := time.Now().UTC()
	for _, content := range []string{"first", "second", "third"} {
		_, err := msgs.Append(ctx, &domain.Message{
			ID:         uuid.NewString(),
			BookingID:  bookingID,
			SenderName: "jane",
			Content:    content,
			CreatedAt:  now,
		})
		require.NoError(t, err)
	}

	last, err := msgs.LastByBooking(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, "third", last.Content)
}

func TestDeleteBookingCascadesThread(t *testing.T) {
	msgs, bookings := newTestRepos(t)
	ctx := context.Background()
	bookingID := createBooking(t, bookings)

	_, err := msgs.Append(ctx, &domain.Message{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		SenderName: "jane",
		Content:    "hello",
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, bookings.Delete(ctx, bookingID))

	thread, err := msgs.ListByBooking(ctx, bookingID)
	require.NoError(t, err)
	assert.Empty(t, thread)
}
