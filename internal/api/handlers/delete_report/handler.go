package delete_report

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
)

const msgInvalidReportID = "invalid report id"

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

// Handle DELETE /api/v1/reports/{reportId}
// Удаление отсутствующего отчета тоже отвечает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["reportId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reports - invalid report id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReportID)
		return
	}

	if err := h.reports.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /reports/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
