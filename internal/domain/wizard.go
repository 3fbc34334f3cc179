package domain

import (
	"strings"
	"time"

	"github.com/motcentre/booking-service/pkg/types"
)

// WizardStep шаг мастера бронирования
type WizardStep int

const (
	StepVehicle     WizardStep = 1 // Выбор автомобиля
	StepAppointment WizardStep = 2 // Выбор даты и времени
	StepCustomer    WizardStep = 3 // Контактные данные
)

// IsValid проверяет, что шаг входит в допустимый диапазон
func (s WizardStep) IsValid() bool {
	return s >= StepVehicle && s <= StepCustomer
}

// AppointmentSelection выбранная дата и слот
// Слот имеет смысл только в паре с датой: смена даты сбрасывает слот
type AppointmentSelection struct {
	Date     time.Time
	TimeSlot types.TimeString
}

// ScheduledAt совмещает дату и слот в единый timestamp
func (a *AppointmentSelection) ScheduledAt() (time.Time, error) {
	return a.TimeSlot.At(a.Date)
}

// CustomerDetails контактные данные клиента
// Свободный текст; валидируется только при отправке бронирования
type CustomerDetails struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// MissingFields возвращает список обязательных полей, которые пусты
// (с учетом строк из одних пробелов)
func (c *CustomerDetails) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}
