package vehicledirectory

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

// StaticDirectory встроенный справочник с демонстрационным набором
// транспортных средств. Используется, когда внешний справочник
// не сконфигурирован
type StaticDirectory struct {
	records map[string]Vehicle
}

// NewStaticDirectory создает справочник с демонстрационными записями
func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{
		records: map[string]Vehicle{
			"AB12CDE": {
				Registration: "AB12CDE",
				Make:         "Ford",
				Model:        "Focus",
				Year:         "2018",
				FuelType:     "Petrol",
			},
			"XY58ABC": {
				Registration: "XY58ABC",
				Make:         "Volkswagen",
				Model:        "Golf",
				Year:         "2020",
				FuelType:     "Diesel",
			},
			"LK70MNO": {
				Registration: "LK70MNO",
				Make:         "Toyota",
				Model:        "Prius",
				Year:         "2021",
				FuelType:     "Hybrid",
			},
		},
	}
}

// SampleRegistrations returns registrations known to the static directory,
// used in the hint shown when a lookup misses
func (d *StaticDirectory) SampleRegistrations() []string {
	return []string{"AB12CDE", "XY58ABC", "LK70MNO"}
}

// Lookup ищет запись по нормализованному регистрационному номеру
func (d *StaticDirectory) Lookup(_ context.Context, registration string) (*domain.VehicleRecord, error) {
	normalized := domain.NormalizeRegistration(registration)

	vehicle, ok := d.records[normalized]
	if !ok {
		return nil, ErrVehicleNotFound
	}

	return vehicle.ToDomain(), nil
}
