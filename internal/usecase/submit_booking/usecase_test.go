package submit_booking

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/infra/storage"
	bookingsRepo "github.com/motcentre/booking-service/internal/infra/storage/bookings"
	"github.com/motcentre/booking-service/internal/integrations/notifier"
	"github.com/motcentre/booking-service/internal/integrations/vehicledirectory"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type captureNotifier struct {
	mu   sync.Mutex
	sent []notifier.Notification
}

func (c *captureNotifier) NotifyAsync(n notifier.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, n)
}

func (c *captureNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

// nextWeekday возвращает ближайший будний день не раньше чем через сутки
func nextWeekday() time.Time {
	date := time.Now().AddDate(0, 0, 1)
	for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T) (*UseCase, *wizard.Service, *captureNotifier, *bookingsRepo.Repository) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Migrate(context.Background(), db))

	repo := bookingsRepo.NewRepository(db)
	wizardSvc := wizard.NewService(
		vehicledirectory.NewStaticDirectory(),
		domain.DefaultSlotSchedule(),
		time.Hour,
		nopLogger{},
	)
	sink := &captureNotifier{}

	return NewUseCase(wizardSvc, repo, sink, nopLogger{}), wizardSvc, sink, repo
}

func prepareSession(t *testing.T, svc *wizard.Service) string {
	t.Helper()
	ctx := context.Background()

	snap, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectVehicle(ctx, snap.ID, "AB12CDE")
	require.NoError(t, err)
	_, err = svc.SelectAppointment(ctx, snap.ID, nextWeekday(), "10:00")
	require.NoError(t, err)
	_, err = svc.UpdateCustomer(ctx, snap.ID, domain.CustomerDetails{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "07000000000",
		Notes: "  first MOT  ",
	})
	require.NoError(t, err)

	return snap.ID
}

func TestExecuteCreatesBookingOnce(t *testing.T) {
	uc, wizardSvc, sink, repo := newTestUseCase(t)
	ctx := context.Background()
	sessionID := prepareSession(t, wizardSvc)

	resp, err := uc.Execute(ctx, &Request{SessionID: sessionID})
	require.NoError(t, err)

	booking := resp.Booking
	assert.Equal(t, "MOT-10001", booking.Reference)
	assert.Equal(t, "Jane Doe", booking.CustomerName)
	assert.Equal(t, "AB12CDE", booking.Registration)
	assert.Equal(t, "Ford Focus (2018)", booking.VehicleDetails)
	assert.Equal(t, "10:00", booking.StartTime.String())
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	require.NotNil(t, booking.Notes)
	assert.Equal(t, "first MOT", *booking.Notes)

	assert.Equal(t, 1, sink.count())

	// Сессия терминальна: повторная отправка отклоняется
	_, err = uc.Execute(ctx, &Request{SessionID: sessionID})
	assert.ErrorIs(t, err, wizard.ErrSessionCompleted)

	all, err := repo.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExecuteIncompleteSession(t *testing.T) {
	uc, wizardSvc, sink, _ := newTestUseCase(t)
	ctx := context.Background()

	snap, err := wizardSvc.StartSession(ctx)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{SessionID: snap.ID})
	assert.ErrorIs(t, err, wizard.ErrMissingSelection)

	_, err = wizardSvc.SelectVehicle(ctx, snap.ID, "AB12CDE")
	require.NoError(t, err)
	_, err = wizardSvc.SelectAppointment(ctx, snap.ID, nextWeekday(), "10:00")
	require.NoError(t, err)

	// Контакты не заполнены
	_, err = uc.Execute(ctx, &Request{SessionID: snap.ID})
	assert.ErrorIs(t, err, wizard.ErrMissingContact)

	assert.Zero(t, sink.count())
}

func TestExecuteUnknownSession(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing"})
	assert.ErrorIs(t, err, wizard.ErrSessionNotFound)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
