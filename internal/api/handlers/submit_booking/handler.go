package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
	"github.com/motcentre/booking-service/internal/service/wizard"
	submitBooking "github.com/motcentre/booking-service/internal/usecase/submit_booking"
)

const (
	msgSessionNotFound      = "booking session not found or expired"
	msgSessionCompleted     = "booking has already been submitted"
	msgMissingSelection     = "missing information: select a vehicle, date and time first"
	msgMissingContact       = "missing details: name, email and phone are required"
	msgSubmissionInProgress = "booking submission is in progress"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrSubmissionInProgress):
			h.logger.Warn("POST /wizard/sessions/%s/submit - submission already in progress", sessionID)
			handlers.RespondConflict(w, msgSubmissionInProgress)
		case errors.Is(err, wizard.ErrSessionCompleted):
			handlers.RespondConflict(w, msgSessionCompleted)
		case errors.Is(err, wizard.ErrMissingSelection):
			handlers.RespondBadRequest(w, msgMissingSelection)
		case errors.Is(err, wizard.ErrMissingContact):
			handlers.RespondBadRequest(w, msgMissingContact)
		default:
			h.logger.Error("POST /wizard/sessions/%s/submit - failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions/%s/submit - booking %s created", sessionID, result.Booking.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result.Booking))
}
