package select_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date, expected YYYY-MM-DD"
	msgSessionNotFound      = "booking session not found or expired"
	msgSessionCompleted     = "booking has already been submitted"
	msgDateNotSelectable    = "selected date is not available for booking"
	msgInvalidSlot          = "selected time slot is not offered"
	msgVehicleNotSelected   = "select a vehicle before choosing an appointment"
	msgSubmissionInProgress = "booking submission is in progress"
)

type Handler struct {
	wizard WizardService
	logger Logger
}

func NewHandler(wizard WizardService, logger Logger) *Handler {
	return &Handler{
		wizard: wizard,
		logger: logger,
	}
}

// Handle PUT /api/v1/wizard/sessions/{sessionId}/appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/sessions/%s/appointment - invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /wizard/sessions/%s/appointment - invalid date %q: %v", sessionID, req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	snap, err := h.wizard.SelectAppointment(r.Context(), sessionID, date, req.TimeSlot)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrDateNotSelectable):
			handlers.RespondBadRequest(w, msgDateNotSelectable)
		case errors.Is(err, wizard.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		case errors.Is(err, wizard.ErrMissingSelection):
			handlers.RespondBadRequest(w, msgVehicleNotSelected)
		case errors.Is(err, wizard.ErrSessionCompleted):
			handlers.RespondConflict(w, msgSessionCompleted)
		case errors.Is(err, wizard.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("PUT /wizard/sessions/%s/appointment - failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardSnapshot(snap))
}
