package conversations

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/infra/storage"
	bookingsRepo "github.com/motcentre/booking-service/internal/infra/storage/bookings"
	messagesRepo "github.com/motcentre/booking-service/internal/infra/storage/messages"
	"github.com/motcentre/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, int64) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, storage.Migrate(ctx, db))

	bookings := bookingsRepo.NewRepository(db)
	messages := messagesRepo.NewRepository(db)

	created, err := bookings.Create(ctx, &domain.Booking{
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "07700900000",
		Registration:   "AB12CDE",
		VehicleDetails: "Ford Focus (2018)",
		BookingDate:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("10:00"),
		Status:         domain.StatusConfirmed,
	})
	require.NoError(t, err)

	return NewService(bookings, messages, nopLogger{}), created.ID
}

func TestSendBlankContentIsSilentNoop(t *testing.T) {
	svc, bookingID := newTestService(t)
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\n\t"} {
		msg, err := svc.Send(ctx, bookingID, "Jane Doe", content, false)
		require.NoError(t, err)
		assert.Nil(t, msg)
	}

	conv, err := svc.Get(ctx, bookingID)
	require.NoError(t, err)
	assert.Empty(t, conv.Messages)
}

func TestSendToUnknownBookingIsSilentNoop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	msg, err := svc.Send(ctx, 999, "Jane Doe", "hello?", false)
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestCustomerMessageBumpsUnreadAndOpenClearsIt(t *testing.T) {
	svc, bookingID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, bookingID, "Jane Doe", "Can I reschedule?", false)
	require.NoError(t, err)
	_, err = svc.Send(ctx, bookingID, "Jane Doe", "Please reply", false)
	require.NoError(t, err)

	// Ответ персонала счетчик не увеличивает
	_, err = svc.Send(ctx, bookingID, "MOT Staff", "Of course", true)
	require.NoError(t, err)

	summaries, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].UnreadCount)
	assert.Equal(t, "Of course", summaries[0].LastMessage)

	// Открытие треда обнуляет счетчик
	conv, err := svc.Get(ctx, bookingID)
	require.NoError(t, err)
	require.Len(t, conv.Messages, 3)
	assert.Equal(t, 0, conv.Booking.UnreadCount)

	summaries, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, summaries[0].UnreadCount)
}

func TestGetUnknownConversation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestMessagesKeepAppendOrder(t *testing.T) {
	svc, bookingID := newTestService(t)
	ctx := context.Background()

	contents := []string{"first", "second", "third", "fourth"}
	for _, content := range contents {
		_, err := svc.Send(ctx, bookingID, "Jane Doe", content, false)
		require.NoError(t, err)
	}

	conv, err := svc.Get(ctx, bookingID)
	require.NoError(t, err)
	require.Len(t, conv.Messages, len(contents))

	for i, msg := range conv.Messages {
		assert.Equal(t, contents[i], msg.Content)
	}
}
