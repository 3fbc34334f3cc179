package find_bookings

import (
	"errors"
	"net/http"

	"github.com/motcentre/booking-service/internal/api/handlers"
	bookingsService "github.com/motcentre/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailRequired      = "email is required"
)

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

// Handle POST /api/v1/bookings/find
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FindBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/find - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.bookings.Find(r.Context(), req.Email, req.Reference)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgEmailRequired)
			return
		}
		h.logger.Error("POST /bookings/find - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
