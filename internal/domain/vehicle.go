package domain

import (
	"fmt"
	"strings"
)

// VehicleRecord represents a vehicle as returned by the vehicle directory
// Immutable once looked up; keyed by normalized registration
type VehicleRecord struct {
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	FuelType     string `json:"fuelType"`
}

// Description возвращает краткое описание вида "Ford Focus (2018)"
func (v *VehicleRecord) Description() string {
	return fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.Year)
}

// NormalizeRegistration приводит регистрационный номер к каноническому виду:
// верхний регистр, без пробельных символов
func NormalizeRegistration(registration string) string {
	return strings.ToUpper(strings.Join(strings.Fields(registration), ""))
}
