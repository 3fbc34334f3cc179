package domain

import (
	"time"

	"github.com/motcentre/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking in the registry
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllBookingStatuses закрытый набор допустимых статусов
var AllBookingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValid проверяет, что статус входит в закрытый набор
func (s BookingStatus) IsValid() bool {
	for _, valid := range AllBookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Booking represents an MOT appointment in the registry
type Booking struct {
	ID        int64
	Reference string // Публичный номер бронирования, например "MOT-10001"

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Registration   string // Нормализованный регистрационный номер
	VehicleDetails string // Например "Ford Focus (2018)"

	BookingDate time.Time        // Календарный день
	StartTime   types.TimeString // Время слота "HH:MM"

	Status BookingStatus
	Notes  *string

	// UnreadCount количество непрочитанных сообщений в треде бронирования
	UnreadCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduledAt совмещает дату и время слота в единый timestamp
func (b *Booking) ScheduledAt() (time.Time, error) {
	return b.StartTime.At(b.BookingDate)
}

// IsUpcoming returns true if the booking is confirmed and not yet in the past
func (b *Booking) IsUpcoming(now time.Time) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	scheduled, err := b.ScheduledAt()
	if err != nil {
		return false
	}
	return scheduled.After(now)
}

// BookingsFilter фильтр для выборки бронирований из реестра
type BookingsFilter struct {
	// Search подстрока (без учета регистра) по имени клиента,
	// регистрационному номеру и описанию автомобиля
	Search string

	// Status фильтр по статусу (опционально)
	Status *BookingStatus
}

// RegistryStats агрегированные показатели для дашборда
type RegistryStats struct {
	TotalBookings    int
	UpcomingBookings int
	CompletedMOTs    int
	VehiclesServiced int // Уникальные регистрационные номера с завершённым тестом
}
