package domain

import "time"

// Message represents a single message in a booking's conversation thread
// Immutable once created; ordered by per-booking append sequence
type Message struct {
	ID        string
	BookingID int64

	// Seq монотонная последовательность в рамках одного бронирования.
	// Гарантирует порядок добавления даже при совпадении timestamp-ов
	Seq int64

	SenderName string
	Content    string
	IsStaff    bool
	CreatedAt  time.Time
}

// ConversationSummary краткая сводка треда для списка диалогов
type ConversationSummary struct {
	BookingID      int64
	CustomerName   string
	VehicleDetails string
	Registration   string
	LastMessage    string
	LastMessageAt  time.Time
	UnreadCount    int
}
