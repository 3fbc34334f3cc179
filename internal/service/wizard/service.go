package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/integrations/vehicledirectory"
	"github.com/motcentre/booking-service/pkg/types"
)

// Service сервис пошагового мастера бронирования.
// Держит сессии в памяти с TTL; переходы между шагами подчиняются
// правилу: вперед — только после заполнения текущего шага,
// назад — всегда свободно
type Service struct {
	store        *sessionStore
	directory    VehicleDirectory
	schedule     domain.SlotSchedule
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис мастера бронирования
func NewService(directory VehicleDirectory, schedule domain.SlotSchedule, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		store:        newSessionStore(sessionTTL),
		directory:    directory,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// StartSession создает новую сессию на первом шаге
func (s *Service) StartSession(ctx context.Context) (Snapshot, error) {
	now := s.timeProvider.Now()

	sess := &session{
		id:        uuid.NewString(),
		step:      domain.StepVehicle,
		createdAt: now,
		updatedAt: now,
	}
	s.store.put(sess)

	s.logger.Info("Wizard: session %s started", sess.id)

	return sess.snapshot(), nil
}

// GetSession возвращает снимок сессии
func (s *Service) GetSession(ctx context.Context, sessionID string) (Snapshot, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: GetSession - session %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.snapshot(), nil
}

// SelectVehicle ищет автомобиль по регистрационному номеру и,
// при успехе, сохраняет его в сессии и переводит мастер на шаг 2.
// Повторный выбор другого автомобиля не сбрасывает дату и слот
func (s *Service) SelectVehicle(ctx context.Context, sessionID, registration string) (Snapshot, error) {
	normalized := domain.NormalizeRegistration(registration)
	if normalized == "" {
		return Snapshot{}, fmt.Errorf("%w: SelectVehicle - registration is required", ErrInvalidInput)
	}

	sess, ok := s.store.get(sessionID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: SelectVehicle - session %s", ErrSessionNotFound, sessionID)
	}

	vehicle, err := s.directory.Lookup(ctx, normalized)
	if err != nil {
		if errors.Is(err, vehicledirectory.ErrVehicleNotFound) {
			s.logger.Info("Wizard: session %s - vehicle %s not found", sessionID, normalized)
			return Snapshot{}, fmt.Errorf("%w: SelectVehicle - registration %s", ErrVehicleNotFound, normalized)
		}
		s.logger.Error("Wizard: session %s - vehicle lookup failed: %v", sessionID, err)
		return Snapshot{}, fmt.Errorf("%w: SelectVehicle - lookup failed: %v", ErrInternal, err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.ensureMutable(sess); err != nil {
		return Snapshot{}, fmt.Errorf("%w: SelectVehicle", err)
	}

	sess.vehicle = vehicle
	// Выбор автомобиля всегда продвигает мастер на следующий шаг,
	// даже если пользователь вернулся на шаг 1 с более позднего
	sess.step = domain.StepAppointment
	s.touch(sess)

	s.logger.Info("Wizard: session %s - selected vehicle %s", sessionID, vehicle.Registration)

	return sess.snapshot(), nil
}

// SelectAppointment сохраняет выбранную дату и, опционально, слот.
// Дата без слота — допустимое промежуточное состояние: слот сбрасывается,
// мастер остается на шаге 2. Дата со слотом переводит на шаг 3
func (s *Service) SelectAppointment(ctx context.Context, sessionID string, date time.Time, timeSlot string) (Snapshot, error) {
	if date.IsZero() {
		return Snapshot{}, fmt.Errorf("%w: SelectAppointment - date is required", ErrInvalidInput)
	}

	sess, ok := s.store.get(sessionID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: SelectAppointment - session %s", ErrSessionNotFound, sessionID)
	}

	now := s.timeProvider.Now()
	if !domain.IsDateSelectable(date, now) {
		return Snapshot{}, fmt.Errorf("%w: SelectAppointment - date %s", ErrDateNotSelectable, date.Format(domain.DateFormat))
	}

	var slot types.TimeString
	if timeSlot != "" {
		parsed, err := types.NewTimeStringFromString(timeSlot)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: SelectAppointment - slot %q: %v", ErrInvalidSlot, timeSlot, err)
		}
		if !s.schedule.Contains(parsed) {
			return Snapshot{}, fmt.Errorf("%w: SelectAppointment - slot %s", ErrInvalidSlot, parsed)
		}
		slot = parsed
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.ensureMutable(sess); err != nil {
		return Snapshot{}, fmt.Errorf("%w: SelectAppointment", err)
	}

	if sess.vehicle == nil {
		return Snapshot{}, fmt.Errorf("%w: SelectAppointment - vehicle is not selected", ErrMissingSelection)
	}

	// Смена даты делает ранее выбранный слот недействительным,
	// поэтому слот берется только из текущего запроса
	sess.appointment = &domain.AppointmentSelection{
		Date:     date,
		TimeSlot: slot,
	}

	if slot != "" {
		sess.step = domain.StepCustomer
	} else {
		sess.step = domain.StepAppointment
	}
	s.touch(sess)

	s.logger.Info("Wizard: session %s - appointment %s %s", sessionID, date.Format(domain.DateFormat), slot)

	return sess.snapshot(), nil
}

// UpdateCustomer сохраняет контактные данные без валидации.
// Обязательность полей проверяется только при отправке
func (s *Service) UpdateCustomer(ctx context.Context, sessionID string, customer domain.CustomerDetails) (Snapshot, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: UpdateCustomer - session %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.ensureMutable(sess); err != nil {
		return Snapshot{}, fmt.Errorf("%w: UpdateCustomer", err)
	}

	sess.customer = customer
	s.touch(sess)

	return sess.snapshot(), nil
}

// JumpToStep переводит мастер на указанный шаг.
// Назад — всегда; вперед — только если данные предыдущих шагов заполнены.
// Недопустимый переход не является ошибкой: состояние просто не меняется
func (s *Service) JumpToStep(ctx context.Context, sessionID string, step domain.WizardStep) (Snapshot, error) {
	if !step.IsValid() {
		return Snapshot{}, fmt.Errorf("%w: JumpToStep - step %d is out of range", ErrInvalidInput, step)
	}

	sess, ok := s.store.get(sessionID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: JumpToStep - session %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.ensureMutable(sess); err != nil {
		return Snapshot{}, fmt.Errorf("%w: JumpToStep", err)
	}

	if sess.canReach(step) {
		sess.step = step
		s.touch(sess)
	}

	return sess.snapshot(), nil
}

// BeginSubmit проверяет готовность сессии к отправке и помечает
// отправку как выполняющуюся. Порядок проверок фиксирован:
// занятость, завершенность, полнота выбора, контактные данные
func (s *Service) BeginSubmit(ctx context.Context, sessionID string) (Snapshot, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: BeginSubmit - session %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.submitInFlight {
		return Snapshot{}, fmt.Errorf("%w: BeginSubmit - session %s", ErrSubmissionInProgress, sessionID)
	}
	if sess.completed {
		return Snapshot{}, fmt.Errorf("%w: BeginSubmit - session %s", ErrSessionCompleted, sessionID)
	}
	if sess.vehicle == nil || !sess.hasCompleteAppointment() {
		return Snapshot{}, fmt.Errorf("%w: BeginSubmit - vehicle or appointment is not selected", ErrMissingSelection)
	}
	if missing := sess.customer.MissingFields(); len(missing) > 0 {
		return Snapshot{}, fmt.Errorf("%w: BeginSubmit - %v", ErrMissingContact, missing)
	}

	sess.submitInFlight = true
	s.touch(sess)

	s.logger.Info("Wizard: session %s - submission started", sessionID)

	return sess.snapshot(), nil
}

// CompleteSubmit фиксирует успешную отправку: сессия становится
// терминальной и хранит реквизиты созданного бронирования
func (s *Service) CompleteSubmit(ctx context.Context, sessionID string, bookingID int64, bookingReference string) (Snapshot, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: CompleteSubmit - session %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.submitInFlight = false
	sess.completed = true
	sess.bookingID = bookingID
	sess.bookingReference = bookingReference
	s.touch(sess)

	s.logger.Info("Wizard: session %s - submission completed, booking %s", sessionID, bookingReference)

	return sess.snapshot(), nil
}

// AbortSubmit снимает признак выполняющейся отправки после сбоя,
// позволяя пользователю повторить попытку
func (s *Service) AbortSubmit(ctx context.Context, sessionID string) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.submitInFlight = false
	s.touch(sess)

	s.logger.Warn("Wizard: session %s - submission aborted", sessionID)
}

// ensureMutable проверяет, что сессию еще можно изменять
func (s *Service) ensureMutable(sess *session) error {
	if sess.completed {
		return ErrSessionCompleted
	}
	if sess.submitInFlight {
		return ErrSubmissionInProgress
	}
	return nil
}

// touch обновляет отметку изменения и продлевает TTL сессии
func (s *Service) touch(sess *session) {
	sess.updatedAt = s.timeProvider.Now()
	s.store.put(sess)
}
