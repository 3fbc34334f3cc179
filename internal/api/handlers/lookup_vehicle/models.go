package lookup_vehicle

import "github.com/motcentre/booking-service/internal/domain"

// VehicleResponse HTTP response model
type VehicleResponse struct {
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	FuelType     string `json:"fuelType"`
	Description  string `json:"description"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(v *domain.VehicleRecord) *VehicleResponse {
	return &VehicleResponse{
		Registration: v.Registration,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		FuelType:     v.FuelType,
		Description:  v.Description(),
	}
}
