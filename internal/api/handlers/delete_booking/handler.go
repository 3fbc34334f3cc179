package delete_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
)

const msgInvalidBookingID = "invalid booking id"

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

// Handle DELETE /api/v1/bookings/{bookingId}
// Удаление отсутствующего бронирования тоже отвечает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.bookings.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /bookings/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
