package jump_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/service/wizard"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidStep          = "step must be between 1 and 3"
	msgSessionNotFound      = "booking session not found or expired"
	msgSessionCompleted     = "booking has already been submitted"
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

// Handle PUT /api/v1/wizard/sessions/{sessionId}/step
// Недопустимый переход вперед не ошибка: состояние просто не меняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req JumpStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/sessions/%s/step - invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.wizard.JumpToStep(r.Context(), sessionID, domain.WizardStep(req.Step))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStep)
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, wizard.ErrSessionCompleted):
			handlers.RespondConflict(w, msgSessionCompleted)
		case errors.Is(err, wizard.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PUT /wizard/sessions/%s/step - failed: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardSnapshot(snap))
}
