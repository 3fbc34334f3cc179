package vehicledirectory

import "github.com/motcentre/booking-service/internal/domain"

// Vehicle модель транспортного средства из справочника
type Vehicle struct {
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	FuelType     string `json:"fuelType"`
}

// ToDomain конвертирует модель справочника в domain модель
func (v *Vehicle) ToDomain() *domain.VehicleRecord {
	return &domain.VehicleRecord{
		Registration: v.Registration,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		FuelType:     v.FuelType,
	}
}
