package send_message

import (
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	IsStaff    bool   `json:"isStaff"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	ID         string `json:"id"`
	BookingID  int64  `json:"bookingId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	IsStaff    bool   `json:"isStaff"`
	CreatedAt  string `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(m *domain.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		BookingID:  m.BookingID,
		SenderName: m.SenderName,
		Content:    m.Content,
		IsStaff:    m.IsStaff,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
