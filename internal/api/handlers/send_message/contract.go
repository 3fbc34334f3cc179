package send_message

import (
	"context"

	"github.com/motcentre/booking-service/internal/domain"
)

type ConversationsService interface {
	Send(ctx context.Context, bookingID int64, senderName, content string, isStaff bool) (*domain.Message, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
