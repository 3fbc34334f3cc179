package get_dashboard_stats

import "github.com/motcentre/booking-service/internal/domain"

// StatsResponse HTTP response model
type StatsResponse struct {
	TotalBookings    int `json:"totalBookings"`
	UpcomingBookings int `json:"upcomingBookings"`
	CompletedMOTs    int `json:"completedMots"`
	VehiclesServiced int `json:"vehiclesServiced"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(stats *domain.RegistryStats) *StatsResponse {
	return &StatsResponse{
		TotalBookings:    stats.TotalBookings,
		UpcomingBookings: stats.UpcomingBookings,
		CompletedMOTs:    stats.CompletedMOTs,
		VehiclesServiced: stats.VehiclesServiced,
	}
}
