package domain

import "time"

// ReportType represents the kind of workshop report
type ReportType string

const (
	ReportTypeMOT        ReportType = "mot"
	ReportTypeDiagnostic ReportType = "diagnostic"
	ReportTypeService    ReportType = "service"
)

// AllReportTypes закрытый набор типов отчётов
var AllReportTypes = []ReportType{
	ReportTypeMOT,
	ReportTypeDiagnostic,
	ReportTypeService,
}

// IsValid проверяет, что тип входит в закрытый набор
func (t ReportType) IsValid() bool {
	for _, valid := range AllReportTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// ReportStatus represents the processing state of a report
type ReportStatus string

const (
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusInProgress ReportStatus = "in_progress"
)

// AllReportStatuses закрытый набор статусов отчётов
var AllReportStatuses = []ReportStatus{
	ReportStatusCompleted,
	ReportStatusPending,
	ReportStatusInProgress,
}

// IsValid проверяет, что статус входит в закрытый набор
func (s ReportStatus) IsValid() bool {
	for _, valid := range AllReportStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Report represents a workshop report (MOT, diagnostic or service)
type Report struct {
	ID             int64
	CustomerName   string
	Registration   string
	VehicleDetails string
	Type           ReportType
	Status         ReportStatus
	ReportedAt     time.Time
	CreatedAt      time.Time
}

// ReportsFilter фильтр для выборки отчётов
type ReportsFilter struct {
	// Search подстрока (без учета регистра) по имени клиента,
	// регистрационному номеру и описанию автомобиля
	Search string

	// Type фильтр по типу отчёта (опционально)
	Type *ReportType

	// Status фильтр по статусу (опционально)
	Status *ReportStatus
}
