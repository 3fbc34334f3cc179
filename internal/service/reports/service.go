package reports

import (
	"context"
	"fmt"

	"github.com/motcentre/booking-service/internal/domain"
)

// Service сервис отчетов мастерской
type Service struct {
	repo   ReportsRepository
	logger Logger
}

// NewService создает новый сервис отчетов
func NewService(repo ReportsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает отчеты с фильтрацией по типу, статусу и подстроке
func (s *Service) List(ctx context.Context, filter domain.ReportsFilter) ([]*domain.Report, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: List - unknown report type %q", ErrInvalidInput, *filter.Type)
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: List - unknown report status %q", ErrInvalidInput, *filter.Status)
	}

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Reports: failed to list: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}
	if result == nil {
		result = []*domain.Report{}
	}
	return result, nil
}

// Delete удаляет отчет. Отсутствующий ID не является ошибкой
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Reports: failed to delete report %d: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}
	s.logger.Info("Reports: report %d deleted", id)
	return nil
}
