package domain

import (
	"time"

	"github.com/motcentre/booking-service/pkg/types"
)

// IsDateSelectable проверяет, что дата подходит для записи:
// не в прошлом (с точностью до календарного дня) и не выходной
func IsDateSelectable(date, now time.Time) bool {
	if isDateInPast(date, now) {
		return false
	}
	return !isWeekend(date)
}

// DaySlots генерирует фиксированный список слотов на день:
// утренний и дневной блоки с шагом SlotDurationMinutes.
// Доступность не учитывается: слоты предлагаются всегда
func (s SlotSchedule) DaySlots() ([]types.TimeString, error) {
	morning, err := generateBlock(s.MorningOpen, s.MorningLast, s.SlotDurationMinutes)
	if err != nil {
		return nil, err
	}

	afternoon, err := generateBlock(s.AfternoonOpen, s.AfternoonLast, s.SlotDurationMinutes)
	if err != nil {
		return nil, err
	}

	return append(morning, afternoon...), nil
}

// Contains проверяет, что время входит в список слотов расписания
func (s SlotSchedule) Contains(slot types.TimeString) bool {
	slots, err := s.DaySlots()
	if err != nil {
		return false
	}
	for _, candidate := range slots {
		if candidate == slot {
			return true
		}
	}
	return false
}

// generateBlock генерирует слоты от first до last включительно
func generateBlock(first, last types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	var slots []types.TimeString

	current := first
	for !current.IsAfter(last) {
		slots = append(slots, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return slots, nil
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
