package get_conversation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
	conversationsService "github.com/motcentre/booking-service/internal/service/conversations"
)

const (
	msgInvalidBookingID     = "invalid booking id"
	msgConversationNotFound = "conversation not found"
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

// Handle GET /api/v1/conversations/{bookingId}
// Открытие треда обнуляет счетчик непрочитанных
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /conversations - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	conv, err := h.conversations.Get(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, conversationsService.ErrConversationNotFound) {
			handlers.RespondNotFound(w, msgConversationNotFound)
			return
		}
		h.logger.Error("GET /conversations/%d - failed: %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(conv))
}
