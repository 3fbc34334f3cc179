package domain

import "github.com/motcentre/booking-service/pkg/types"

// SlotSchedule дневное расписание слотов: утренний и дневной блоки
// с перерывом на обед между ними
type SlotSchedule struct {
	MorningOpen         types.TimeString // Начало первого утреннего слота
	MorningLast         types.TimeString // Начало последнего утреннего слота
	AfternoonOpen       types.TimeString // Начало первого дневного слота
	AfternoonLast       types.TimeString // Начало последнего дневного слота
	SlotDurationMinutes int
}

// DefaultSlotSchedule расписание по умолчанию: 09:00–11:30 и 13:00–15:30,
// слоты по полчаса
func DefaultSlotSchedule() SlotSchedule {
	return SlotSchedule{
		MorningOpen:         types.TimeString("09:00"),
		MorningLast:         types.TimeString("11:30"),
		AfternoonOpen:       types.TimeString("13:00"),
		AfternoonLast:       types.TimeString("15:30"),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// Slot фиксированный временной слот, предлагаемый для записи
// Доступность не отслеживается: каждый слот предлагается всегда
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}
