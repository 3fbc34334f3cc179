package bookings

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
	"github.com/motcentre/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *bookingsRepo.Repository) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Migrate(context.Background(), db))

	repo := bookingsRepo.NewRepository(db)
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedClock{now: testNow}

	return svc, repo
}

func seedRegistry(t *testing.T, repo *bookingsRepo.Repository) {
	t.Helper()
	ctx := context.Background()

	seeds := []domain.Booking{
		// Предстоящее
		{CustomerName: "John Smith", CustomerEmail: "john@example.com", Registration: "AB12CDE",
			VehicleDetails: "Ford Focus (2018)", BookingDate: testNow.AddDate(0, 0, 7), Status: domain.StatusConfirmed},
		// Завершённые, одна машина дважды
		{CustomerName: "Mike Williams", CustomerEmail: "mike@example.com", Registration: "LK70MNO",
			VehicleDetails: "Toyota Prius (2021)", BookingDate: testNow.AddDate(0, 0, -10), Status: domain.StatusCompleted},
		{CustomerName: "Mike Williams", CustomerEmail: "mike@example.com", Registration: "LK70MNO",
			VehicleDetails: "Toyota Prius (2021)", BookingDate: testNow.AddDate(-1, 0, 0), Status: domain.StatusCompleted},
		// Отменённое
		{CustomerName: "Emma Brown", CustomerEmail: "emma@example.com", Registration: "PQ19RST",
			VehicleDetails: "Nissan Qashqai (2019)", BookingDate: testNow.AddDate(0, 0, -3), Status: domain.StatusCancelled},
	}

	for _, seed := range seeds {
		seed.CustomerPhone = "07700900000"
		seed.StartTime = types.TimeString("10:00")
		_, err := repo.Create(ctx, &seed)
		require.NoError(t, err)
	}
}

func TestStats(t *testing.T) {
	svc, repo := newTestService(t)
	seedRegistry(t, repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 1, stats.UpcomingBookings)
	assert.Equal(t, 2, stats.CompletedMOTs)
	// Одна и та же машина дважды считается один раз
	assert.Equal(t, 1, stats.VehiclesServiced)
}

func TestFind(t *testing.T) {
	svc, repo := newTestService(t)
	seedRegistry(t, repo)
	ctx := context.Background()

	// По email возвращаются все бронирования клиента
	found, err := svc.Find(ctx, "mike@example.com", "")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// Номер сужает результат
	found, err = svc.Find(ctx, "mike@example.com", "MOT-10002")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "MOT-10002", found[0].Reference)

	// Чужой номер не раскрывает чужое бронирование
	found, err = svc.Find(ctx, "emma@example.com", "MOT-10002")
	require.NoError(t, err)
	assert.Empty(t, found)

	// Пустой email - ошибка валидации
	_, err = svc.Find(ctx, "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Неизвестный email - пустой список, не ошибка
	found, err = svc.Find(ctx, "nobody@example.com", "")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	seedRegistry(t, repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 2))
	require.NoError(t, svc.Delete(ctx, 2))
	require.NoError(t, svc.Delete(ctx, 999))

	left, err := svc.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, left, 3)
}
