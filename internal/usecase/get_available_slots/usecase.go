package get_available_slots

import (
	"context"
	"fmt"

	"github.com/motcentre/booking-service/internal/domain"
)

// UseCase use case получения слотов для записи на дату
type UseCase struct {
	schedule     domain.SlotSchedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule domain.SlotSchedule, logger Logger) *UseCase {
	return &UseCase{
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает слоты на запрошенную дату.
// Для даты в прошлом или выходного дня возвращает пустой список
// с признаком Selectable = false; это не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	if !domain.IsDateSelectable(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is not selectable", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:       req.Date,
			Selectable: false,
			Slots:      []Slot{},
		}, nil
	}

	times, err := uc.schedule.DaySlots()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(times))
	for i, start := range times {
		slots[i] = Slot{
			StartTime:       start,
			DurationMinutes: uc.schedule.SlotDurationMinutes,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		Selectable: true,
		Slots:      slots,
	}, nil
}
