package start_wizard

import (
	"net/http"

	"github.com/motcentre/booking-service/internal/api/handlers"
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

// Handle POST /api/v1/wizard/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap, err := h.wizard.StartSession(r.Context())
	if err != nil {
		h.logger.Error("POST /wizard/sessions - failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard/sessions - session %s started", snap.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromWizardSnapshot(snap))
}
