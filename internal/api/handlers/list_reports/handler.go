package list_reports

import (
	"errors"
	"net/http"

	"github.com/motcentre/booking-service/internal/api/handlers"
	"github.com/motcentre/booking-service/internal/domain"
	reportsService "github.com/motcentre/booking-service/internal/service/reports"
)

const (
	msgInvalidType   = "unknown report type"
	msgInvalidStatus = "unknown report status"
)

type Handler struct {
	reports ReportsService
	logger  Logger
}

func NewHandler(reports ReportsService, logger Logger) *Handler {
	return &Handler{
		reports: reports,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports?type=&status=&search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.ReportsFilter{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("type"); raw != "" {
		reportType := domain.ReportType(raw)
		if !reportType.IsValid() {
			h.logger.Warn("GET /reports - unknown type %q", raw)
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		filter.Type = &reportType
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ReportStatus(raw)
		if !status.IsValid() {
			h.logger.Warn("GET /reports - unknown status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	result, err := h.reports.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, reportsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		h.logger.Error("GET /reports - failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
