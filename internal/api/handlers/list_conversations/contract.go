package list_conversations

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

type ConversationsService interface {
	List(ctx context.Context, search string) ([]*domain.ConversationSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
