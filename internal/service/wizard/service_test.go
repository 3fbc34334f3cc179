package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/integrations/vehicledirectory"
)

// Среда 10:00
var testNow = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

// Понедельник следующей недели
var nextMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	svc := NewService(
		vehicledirectory.NewStaticDirectory(),
		domain.DefaultSlotSchedule(),
		time.Hour,
		nopLogger{},
	)
	svc.timeProvider = &fixedClock{now: testNow}
	return svc
}

func TestFullWizardFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snap, err := svc.StartSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)
	assert.Equal(t, domain.StepVehicle, snap.Step)

	sessionID := snap.ID

	// Шаг 1: автомобиль (номер в свободном написании)
	snap, err = svc.SelectVehicle(ctx, sessionID, "ab12 cde")
	require.NoError(t, err)
	require.NotNil(t, snap.Vehicle)
	assert.Equal(t, "AB12CDE", snap.Vehicle.Registration)
	assert.Equal(t, "Ford Focus (2018)", snap.Vehicle.Description())
	assert.Equal(t, domain.StepAppointment, snap.Step)

	// Шаг 2: дата и слот
	snap, err = svc.SelectAppointment(ctx, sessionID, nextMonday, "10:00")
	require.NoError(t, err)
	require.NotNil(t, snap.Appointment)
	assert.Equal(t, "10:00", snap.Appointment.TimeSlot.String())
	assert.Equal(t, domain.StepCustomer, snap.Step)

	// Шаг 3: контакты
	snap, err = svc.UpdateCustomer(ctx, sessionID, domain.CustomerDetails{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "07000000000",
	})
	require.NoError(t, err)

	// Отправка
	snap, err = svc.BeginSubmit(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, snap.SubmitInFlight)

	snap, err = svc.CompleteSubmit(ctx, sessionID, 1, "MOT-10001")
	require.NoError(t, err)
	assert.True(t, snap.Completed)
	assert.Equal(t, "MOT-10001", snap.BookingReference)

	// Завершенная сессия терминальна
	_, err = svc.BeginSubmit(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionCompleted)

	_, err = svc.SelectVehicle(ctx, sessionID, "XY58ABC")
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestSelectVehicleUnknownRegistration(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snap, _ := svc.StartSession(ctx)

	_, err := svc.SelectVehicle(ctx, snap.ID, "ZZ99ZZZ")
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	// Состояние не изменилось
	after, err := svc.GetSession(ctx, snap.ID)
	require.NoError(t, err)
	assert.Nil(t, after.Vehicle)
	assert.Equal(t, domain.StepVehicle, after.Step)
}

func TestSelectAppointmentValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snap, _ := svc.StartSession(ctx)
	sessionID := snap.ID

	_, err := svc.SelectVehicle(ctx, sessionID, "AB12CDE")
	require.NoError(t, err)

	// Выходной
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	_, err = svc.SelectAppointment(ctx, sessionID, saturday, "10:00")
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	// Прошлое
	yesterday := testNow.AddDate(0, 0, -1)
	_, err = svc.SelectAppointment(ctx, sessionID, yesterday, "10:00")
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	// Слот вне расписания
	_, err = svc.SelectAppointment(ctx, sessionID, nextMonday, "12:00")
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = svc.SelectAppointment(ctx, sessionID, nextMonday, "9am")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestDateChangeInvalidatesSlot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snap, _ := svc.StartSession(ctx)
	sessionID := snap.ID

	_, err := svc.SelectVehicle(ctx, sessionID, "AB12CDE")
	require.NoError(t, err)

	snap, err = svc.SelectAppointment(ctx, sessionID, nextMonday, "10:00")
	require.NoError(t, err)
	assert.Equal(t, domain.StepCustomer, snap.Step)

	// Смена даты без слота: слот сброшен, мастер вернулся на шаг 2
	tuesday := nextMonday.AddDate(0, 0, 1)
	snap, err = svc.SelectAppointment(ctx, sessionID, tuesday, "")
	require.NoError(t, err)
	require.NotNil(t, snap.Appointment)
	assert.Equal(t, tuesday, snap.Appointment.Date)
	assert.Empty(t, snap.Appointment.TimeSlot.String())
	assert.Equal(t, domain.StepAppointment, snap.Step)

	// Отправка без слота невозможна
	_, err = svc.BeginSubmit(ctx, sessionID)
	assert.ErrorIs(t, err, ErrMissingSelection)
}

func TestJumpToStep(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snap, _ := svc.StartSession(ctx)
	sessionID := snap.ID

	// Вперед без данных - no-op
	snap, err := svc.JumpToStep(ctx, sessionID, domain.StepCustomer)
	require.NoError(t, err)
	assert.Equal(t, domain.StepVehicle, snap.Step)

	_, err = svc.SelectVehicle(ctx, sessionID, "AB12CDE")
	require.NoError(t, err)

	// Шаг 3 недостижим без полной записи на приём
	snap, err = svc.JumpToStep(ctx, sessionID, domain.StepCustomer)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAppointment, snap.Step)

	_, err = svc.SelectAppointment(ctx, sessionID, nextMonday, "10:00")
	require.NoError(t, err)

	// Назад - всегда свободно
	snap, err = svc.JumpToStep(ctx, sessionID, domain.StepVehicle)
	require.NoError(t, err)
	assert.Equal(t, domain.StepVehicle, snap.Step)

	// И снова вперед: данные заполнены
	snap, err = svc.JumpToStep(ctx, sessionID, domain.StepCustomer)
	require.NoError(t, err)
	assert.Equal(t, domain.StepCustomer, snap.Step)

	// Шаг вне диапазона
	_, err = svc.JumpToStep(ctx, sessionID, domain.WizardStep(4))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmitValidationOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snap, _ := svc.StartSession(ctx)
	sessionID := snap.ID

	// Без автомобиля и записи
	_, err := svc.BeginSubmit(ctx, sessionID)
	assert.ErrorIs(t, err, ErrMissingSelection)

	_, err = svc.SelectVehicle(ctx, sessionID, "AB12CDE")
	require.NoError(t, err)
	_, err = svc.SelectAppointment(ctx, sessionID, nextMonday, "10:00")
	require.NoError(t, err)

	// Пустой email (и из одних пробелов тоже)
	_, err = svc.UpdateCustomer(ctx, sessionID, domain.CustomerDetails{
		Name:  "Jane Doe",
		Email: "   ",
		Phone: "07000000000",
	})
	require.NoError(t, err)

	_, err = svc.BeginSubmit(ctx, sessionID)
	assert.ErrorIs(t, err, ErrMissingContact)

	_, err = svc.UpdateCustomer(ctx, sessionID, domain.CustomerDetails{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "07000000000",
	})
	require.NoError(t, err)

	_, err = svc.BeginSubmit(ctx, sessionID)
	assert.NoError(t, err)
}

func TestConcurrentSubmitRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snap, _ := svc.StartSession(ctx)
	sessionID := snap.ID

	_, err := svc.SelectVehicle(ctx, sessionID, "AB12CDE")
	require.NoError(t, err)
	_, err = svc.SelectAppointment(ctx, sessionID, nextMonday, "10:00")
	require.NoError(t, err)
	_, err = svc.UpdateCustomer(ctx, sessionID, domain.CustomerDetails{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "07000000000",
	})
	require.NoError(t, err)

	// Две параллельные отправки: проходит ровно одна
	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.BeginSubmit(ctx, sessionID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSubmissionInProgress)
		}
	}
	assert.Equal(t, 1, succeeded)

	// После сбоя отправки флаг снимается и попытку можно повторить
	svc.AbortSubmit(ctx, sessionID)
	_, err = svc.BeginSubmit(ctx, sessionID)
	assert.NoError(t, err)
}

func TestSessionNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.SelectVehicle(ctx, "missing", "AB12CDE")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.BeginSubmit(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
