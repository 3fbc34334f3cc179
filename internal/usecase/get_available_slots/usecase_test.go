package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcentre/booking-service/internal/domain"
)

// Среда 10:00
var testNow = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

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

func newTestUseCase() *UseCase {
	uc := NewUseCase(domain.DefaultSlotSchedule(), nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}
	return uc
}

func TestExecuteWeekday(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // понедельник
	})
	require.NoError(t, err)

	assert.True(t, resp.Selectable)
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "11:30", resp.Slots[5].StartTime.String())
	assert.Equal(t, "13:00", resp.Slots[6].StartTime.String())
	assert.Equal(t, "15:30", resp.Slots[11].StartTime.String())

	for _, slot := range resp.Slots {
		assert.Equal(t, domain.DefaultSlotDurationMinutes, slot.DurationMinutes)
	}
}

func TestExecuteUnselectableDates(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name string
		date time.Time
	}{
		{"saturday", time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)},
		{"past weekday", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date})
			require.NoError(t, err)

			// Недоступная дата не ошибка: пустой список с признаком
			assert.False(t, resp.Selectable)
			assert.Empty(t, resp.Slots)
		})
	}
}

func TestExecuteZeroDate(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
