package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motcentre/booking-service/pkg/types"
)

// Среда 15:30
var testNow = time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)

func TestIsDateSelectable(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{
			name: "today is selectable even late in the day",
			date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "tomorrow weekday",
			date: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "yesterday",
			date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "saturday",
			date: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "sunday",
			date: time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "next monday",
			date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "past saturday fails both checks",
			date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateSelectable(tt.date, testNow))
		})
	}
}

func TestDaySlots(t *testing.T) {
	slots, err := DefaultSlotSchedule().DaySlots()
	require.NoError(t, err)

	// 6 утренних + 6 дневных, обед пропущен
	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("11:30"), slots[5])
	assert.Equal(t, types.TimeString("13:00"), slots[6])
	assert.Equal(t, types.TimeString("15:30"), slots[11])

	for _, slot := range slots {
		assert.False(t, slot.IsAfter(types.TimeString("12:00")) && slot.IsBefore(types.TimeString("13:00")),
			"slot %s falls into the lunch gap", slot)
	}
}

func TestScheduleContains(t *testing.T) {
	schedule := DefaultSlotSchedule()

	assert.True(t, schedule.Contains(types.TimeString("09:00")))
	assert.True(t, schedule.Contains(types.TimeString("10:00")))
	assert.True(t, schedule.Contains(types.TimeString("15:30")))

	assert.False(t, schedule.Contains(types.TimeString("12:00")), "lunch gap")
	assert.False(t, schedule.Contains(types.TimeString("09:15")), "off-grid time")
	assert.False(t, schedule.Contains(types.TimeString("16:00")), "after closing")
	assert.False(t, schedule.Contains(types.TimeString("08:30")), "before opening")
}

func TestNormalizeRegistration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ab12cde", "AB12CDE"},
		{"AB12 CDE", "AB12CDE"},
		{"  ab 12 cde  ", "AB12CDE"},
		{"AB12CDE", "AB12CDE"},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeRegistration(tt.in))
	}
}
