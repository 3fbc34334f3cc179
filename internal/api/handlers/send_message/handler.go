package send_message

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/motcentre/booking-service/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
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

// Handle POST /api/v1/conversations/{bookingId}/messages
// Пустое содержимое и неизвестное бронирование молча игнорируются:
// сервис ничего не сохраняет, ответ 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /conversations - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conversations/%d/messages - invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	msg, err := h.conversations.Send(r.Context(), bookingID, req.SenderName, req.Content, req.IsStaff)
	if err != nil {
		h.logger.Error("POST /conversations/%d/messages - failed: %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	if msg == nil {
		handlers.RespondNoContent(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(msg))
}
