package get_conversation

import (
	"time"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/service/conversations/models"
)

// MessageResponse HTTP модель сообщения треда
type MessageResponse struct {
	ID         string `json:"id"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	IsStaff    bool   `json:"isStaff"`
	CreatedAt  string `json:"createdAt"`
}

// ConversationResponse HTTP response model
type ConversationResponse struct {
	BookingID      int64             `json:"bookingId"`
	Reference      string            `json:"reference"`
	CustomerName   string            `json:"customerName"`
	Registration   string            `json:"registration"`
	VehicleDetails string            `json:"vehicleDetails"`
	BookingDate    string            `json:"bookingDate"`
	StartTime      string            `json:"startTime"`
	Status         string            `json:"status"`
	Messages       []MessageResponse `json:"messages"`
}

// FromServiceModel конвертирует тред в HTTP response
// Сообщения идут в порядке добавления
func FromServiceModel(conv *models.Conversation) *ConversationResponse {
	msgs := make([]MessageResponse, len(conv.Messages))
	for i, m := range conv.Messages {
		msgs[i] = MessageResponse{
			ID:         m.ID,
			SenderName: m.SenderName,
			Content:    m.Content,
			IsStaff:    m.IsStaff,
			CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		}
	}

	b := conv.Booking
	return &ConversationResponse{
		BookingID:      b.ID,
		Reference:      b.Reference,
		CustomerName:   b.CustomerName,
		Registration:   b.Registration,
		VehicleDetails: b.VehicleDetails,
		BookingDate:    b.BookingDate.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		Status:         string(b.Status),
		Messages:       msgs,
	}
}
