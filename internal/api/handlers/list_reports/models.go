package list_reports

import (
	"github.com/motcentre/booking-service/internal/domain"
)

// ReportResponse HTTP модель отчета
type ReportResponse struct {
	ID             int64  `json:"id"`
	CustomerName   string `json:"customerName"`
	Registration   string `json:"registration"`
	VehicleDetails string `json:"vehicleDetails"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	ReportedAt     string `json:"reportedAt"`
}

// ListReportsResponse HTTP response model
type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(reports []*domain.Report) *ListReportsResponse {
	items := make([]ReportResponse, len(reports))
	for i, r := range reports {
		items[i] = ReportResponse{
			ID:             r.ID,
			CustomerName:   r.CustomerName,
			Registration:   r.Registration,
			VehicleDetails: r.VehicleDetails,
			Type:           string(r.Type),
			Status:         string(r.Status),
			ReportedAt:     r.ReportedAt.Format(domain.DateFormat),
		}
	}

	return &ListReportsResponse{
		Reports: items,
		Total:   len(items),
	}
}
