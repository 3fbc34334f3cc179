package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	storage "github.com/motcentre/booking-service/internal/infra/storage/bookings"

	"github.com/motcentre/booking-service/internal/domain"
)

// Service сервис реестра бронирований
type Service struct {
	repo         BookingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис реестра бронирований
func NewService(repo BookingsRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает бронирования реестра с фильтрацией
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Bookings: failed to list: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}
	if result == nil {
		result = []*domain.Booking{}
	}
	return result, nil
}

// Get возвращает бронирование по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: Get - id %d", ErrBookingNotFound, id)
		}
		s.logger.Error("Bookings: failed to get booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: Get: %v", ErrInternal, err)
	}
	return booking, nil
}

// Delete удаляет бронирование вместе с тредом сообщений
// Отсутствующий ID не является ошибкой: операция идемпотентна
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Bookings: failed to delete booking %d: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}
	s.logger.Info("Bookings: booking %d deleted", id)
	return nil
}

// Find возвращает бронирования клиента по email.
// Если указан публичный номер, результат сужается до него;
// номер чужого клиента не раскрывает его бронирование
func (s *Service) Find(ctx context.Context, email, reference string) ([]*domain.Booking, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: Find - email is required", ErrInvalidInput)
	}

	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Bookings: failed to find by email: %v", err)
		return nil, fmt.Errorf("%w: Find: %v", ErrInternal, err)
	}

	if reference = strings.TrimSpace(reference); reference != "" {
		matched := []*domain.Booking{}
		for _, booking := range found {
			if strings.EqualFold(booking.Reference, reference) {
				matched = append(matched, booking)
			}
		}
		return matched, nil
	}

	if found == nil {
		found = []*domain.Booking{}
	}
	return found, nil
}

// Stats считает агрегированные показатели дашборда по текущему
// содержимому реестра
func (s *Service) Stats(ctx context.Context) (*domain.RegistryStats, error) {
	all, err := s.repo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Bookings: failed to load registry for stats: %v", err)
		return nil, fmt.Errorf("%w: Stats: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	stats := &domain.RegistryStats{TotalBookings: len(all)}

	serviced := make(map[string]struct{})
	for _, booking := range all {
		if booking.IsUpcoming(now) {
			stats.UpcomingBookings++
		}
		if booking.Status == domain.StatusCompleted {
			stats.CompletedMOTs++
			serviced[booking.Registration] = struct{}{}
		}
	}
	stats.VehiclesServiced = len(serviced)

	return stats, nil
}
