package models

import "github.com/motcentre/booking-service/internal/domain"

// Conversation тред сообщений бронирования вместе с его шапкой
type Conversation struct {
	Booking  *domain.Booking
	Messages []*domain.Message
}
