package list_conversations

import (
	"net/http"

	"github.com/motcentre/booking-service/internal/api/handlers"
)

type Handler struct {
	conversations ConversationsService
	logger        Logger
}

func NewHandler(conversations ConversationsService, logger Logger) *Handler {
	return &Handler{
		conversations: conversations,
		logger:        logger,
	}
}

// Handle GET /api/v1/conversations?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.conversations.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.logger.Error("GET /conversations - failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
