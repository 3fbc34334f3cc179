package get_available_slots

import (
	"time"

	"github.com/motcentre/booking-service/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	Selectable bool      // Подходит ли дата для записи (не прошлое, не выходной)
	Slots      []Slot    // Список слотов; пустой для недоступной даты
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота, например "10:00"
	DurationMinutes int              // Длительность слота в минутах
}
