package get_conversation

import (
	"context"

	"github.com/motcentre/booking-service/internal/service/conversations/models"
)

type ConversationsService interface {
	Get(ctx context.Context, bookingID int64) (*models.Conversation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
