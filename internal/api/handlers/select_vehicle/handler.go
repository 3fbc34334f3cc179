package select_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgRegistrationRequired = "registration is required"
	msgSessionNotFound      = "booking session not found or expired"
	msgSessionCompleted     = "booking has already been submitted"
	msgVehicleNotFound      = "Vehicle not found. Try one of our sample registrations: AB12CDE, XY58ABC, or LK70MNO"
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

// Handle PUT /api/v1/wizard/sessions/{sessionId}/vehicle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/sessions/%s/vehicle - invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.wizard.SelectVehicle(r.Context(), sessionID, req.Registration)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgRegistrationRequired)
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrVehicleNotFound):
			h.logger.Info("PUT /wizard/sessions/%s/vehicle - vehicle %s not found", sessionID, req.Registration)
			handlers.RespondNotFound(w, msgVehicleNotFound)
		case errors.Is(err, wizard.ErrSessionCompleted):
			handlers.RespondConflict(w, msgSessionCompleted)
		case errors.Is(err, wizard.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PUT /wizard/sessions/%s/vehicle - failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardSnapshot(snap))
}
