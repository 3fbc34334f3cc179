package conversations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	storagebookings "github.com/motcentre/booking-service/internal/infra/storage/bookings"
	storagemessages "github.com/motcentre/booking-service/internal/infra/storage/messages"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/service/conversations/models"
)

// Service сервис переписок по бронированиям
// Каждому бронированию соответствует ровно один тред сообщений
type Service struct {
	bookings     BookingsRepository
	messages     MessagesRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис переписок
func NewService(bookings BookingsRepository, messages MessagesRepository, logger Logger) *Service {
	return &Service{
		bookings:     bookings,
		messages:     messages,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает сводки тредов: шапка бронирования, последнее
// сообщение и счетчик непрочитанных
func (s *Service) List(ctx context.Context, search string) ([]*domain.ConversationSummary, error) {
	all, err := s.bookings.List(ctx, domain.BookingsFilter{Search: search})
	if err != nil {
		s.logger.Error("Conversations: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	summaries := make([]*domain.ConversationSummary, 0, len(all))
	for _, booking := range all {
		summary := &domain.ConversationSummary{
			BookingID:      booking.ID,
			CustomerName:   booking.CustomerName,
			VehicleDetails: booking.VehicleDetails,
			Registration:   booking.Registration,
			UnreadCount:    booking.UnreadCount,
		}

		last, err := s.messages.LastByBooking(ctx, booking.ID)
		switch {
		case err == nil:
			summary.LastMessage = last.Content
			summary.LastMessageAt = last.CreatedAt
		case errors.Is(err, storagemessages.ErrNoMessages):
			// Тред без сообщений — сводка остается пустой
		default:
			s.logger.Error("Conversations: failed to load last message for booking %d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Get возвращает тред бронирования в порядке добавления сообщений
// Открытие треда обнуляет счетчик непрочитанных
func (s *Service) Get(ctx context.Context, bookingID int64) (*models.Conversation, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storagebookings.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: Get - booking %d", ErrConversationNotFound, bookingID)
		}
		s.logger.Error("Conversations: failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Get: %v", ErrInternal, err)
	}

	msgs, err := s.messages.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("Conversations: failed to list messages for booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Get: %v", ErrInternal, err)
	}
	if msgs == nil {
		msgs = []*domain.Message{}
	}

	if booking.UnreadCount > 0 {
		if err := s.bookings.MarkRead(ctx, bookingID); err != nil {
			s.logger.Error("Conversations: failed to mark booking %d as read: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Get: %v", ErrInternal, err)
		}
		booking.UnreadCount = 0
	}

	return &models.Conversation{
		Booking:  booking,
		Messages: msgs,
	}, nil
}

// Send добавляет сообщение в тред бронирования.
// Пустое содержимое и неизвестное бронирование молча игнорируются:
// операция в этих случаях ничего не делает и не возвращает ошибку.
// Сообщение клиента увеличивает счетчик непрочитанных
func (s *Service) Send(ctx context.Context, bookingID int64, senderName, content string, isStaff bool) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, storagebookings.ErrBookingNotFound) {
			s.logger.Info("Conversations: message to unknown booking %d dropped", bookingID)
			return nil, nil
		}
		s.logger.Error("Conversations: failed to check booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Send: %v", ErrInternal, err)
	}

	msg := &domain.Message{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		SenderName: senderName,
		Content:    content,
		IsStaff:    isStaff,
		CreatedAt:  s.timeProvider.Now(),
	}

	saved, err := s.messages.Append(ctx, msg)
	if err != nil {
		s.logger.Error("Conversations: failed to append message to booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Send: %v", ErrInternal, err)
	}

	if !isStaff {
		if err := s.bookings.IncrementUnread(ctx, bookingID); err != nil {
			s.logger.Error("Conversations: failed to bump unread for booking %d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Send: %v", ErrInternal, err)
		}
	}

	return saved, nil
}
