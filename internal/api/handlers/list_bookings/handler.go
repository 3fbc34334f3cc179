package list_bookings

import (
	"net/http"

	"github.com/motcentre/booking-service/internal/api/handlers"
	"github.com/motcentre/booking-service/internal/domain"
)

const msgInvalidStatus = "unknown booking status"

type Handler struct {
	bookings BookingsService
	logger   Logger
}

func NewHandler(bookings BookingsService, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings?search=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookingsFilter{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.IsValid() {
			h.logger.Warn("GET /bookings - unknown status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	result, err := h.bookings.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /bookings - failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
