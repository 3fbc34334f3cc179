package get_available_slots

import (
	"github.com/motcentre/booking-service/internal/domain"
	getAvailableSlots "github.com/motcentre/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date       string         `json:"date"`
	Selectable bool           `json:"selectable"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &SlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		Selectable: resp.Selectable,
		Slots:      slots,
	}
}
