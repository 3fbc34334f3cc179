package list_conversations

import (
	"time"

	"github.com/motcentre/booking-service/internal/domain"
)

// ConversationSummaryResponse сводка треда для списка диалогов
type ConversationSummaryResponse struct {
	BookingID      int64  `json:"bookingId"`
	CustomerName   string `json:"customerName"`
	VehicleDetails string `json:"vehicleDetails"`
	Registration   string `json:"registration"`
	LastMessage    string `json:"lastMessage,omitempty"`
	LastMessageAt  string `json:"lastMessageAt,omitempty"`
	UnreadCount    int    `json:"unreadCount"`
}

// ListConversationsResponse HTTP response model
type ListConversationsResponse struct {
	Conversations []ConversationSummaryResponse `json:"conversations"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(summaries []*domain.ConversationSummary) *ListConversationsResponse {
	items := make([]ConversationSummaryResponse, len(summaries))
	for i, s := range summaries {
		items[i] = ConversationSummaryResponse{
			BookingID:      s.BookingID,
			CustomerName:   s.CustomerName,
			VehicleDetails: s.VehicleDetails,
			Registration:   s.Registration,
			LastMessage:    s.LastMessage,
			UnreadCount:    s.UnreadCount,
		}
		if !s.LastMessageAt.IsZero() {
			items[i].LastMessageAt = s.LastMessageAt.Format(time.RFC3339)
		}
	}

	return &ListConversationsResponse{Conversations: items}
}
