package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	store        DocumentStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetClientReservations возвращает бронирования клиента, новые первыми
func (s *Service) GetClientReservations(ctx context.Context, clientID string) ([]models.ReservationResponse, error) {
	s.logger.Info("GetClientReservations: client=%s", clientID)

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("GetClientReservations: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: GetClientReservations - store error: %v", ErrInternal, err)
	}

	own := make([]domain.Reservation, 0)
	for _, r := range doc.Reservations {
		if r.ClientID == clientID {
			own = append(own, r)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].CreatedAt.After(own[j].CreatedAt)
	})

	s.logger.Info("GetClientReservations: found %d reservations for client=%s", len(own), clientID)
	return models.FromDomainReservationList(own, models.NewLookup(doc)), nil
}

// CancelOwn отменяет бронирование клиента.
// Чужое бронирование не отличается от несуществующего.
func (s *Service) CancelOwn(ctx context.Context, clientID, reservationID string) (*models.ReservationResponse, error) {
	s.logger.Info("CancelOwn: client=%s, reservation=%s", clientID, reservationID)

	now := s.timeProvider.Now()
	var result models.ReservationResponse

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		reservation := doc.FindReservation(reservationID)
		if reservation == nil || reservation.ClientID != clientID {
			return ErrReservationNotFound
		}
		if !reservation.CanBeCancelled() {
			return fmt.Errorf("%w: status is %s", ErrCannotCancel, reservation.Status)
		}

		reservation.Status = domain.StatusCancelled
		reservation.CancelledAt = ptr.Ptr(now)
		result = models.FromDomainReservation(reservation, models.NewLookup(doc))
		return nil
	})

	switch {
	case errors.Is(err, ErrReservationNotFound):
		s.logger.Warn("CancelOwn: reservation=%s not found for client=%s", reservationID, clientID)
		return nil, err
	case errors.Is(err, ErrCannotCancel):
		s.logger.Warn("CancelOwn: reservation=%s: %v", reservationID, err)
		return nil, err
	case err != nil:
		s.logger.Error("CancelOwn: failed to save reservation=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: CancelOwn - store error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelOwn: reservation=%s cancelled", reservationID)
	return &result, nil
}

// SetStatus устанавливает статус бронирования администратором.
// Повторная установка текущего статуса успешна и ничего не записывает.
func (s *Service) SetStatus(ctx context.Context, reservationID, status string) (*models.SetStatusResponse, error) {
	s.logger.Info("SetStatus: reservation=%s, status=%s", reservationID, status)

	target := domain.ReservationStatus(status)
	if !target.IsValid() {
		s.logger.Warn("SetStatus: invalid status=%q", status)
		return nil, ErrInvalidStatus
	}

	now := s.timeProvider.Now()
	result := &models.SetStatusResponse{}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		reservation := doc.FindReservation(reservationID)
		if reservation == nil {
			return ErrReservationNotFound
		}

		if reservation.Status == target {
			result.Reservation = models.FromDomainReservation(reservation, models.NewLookup(doc))
			return errUnchanged
		}
		if !domain.CanTransition(reservation.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, target)
		}

		reservation.Status = target
		if target == domain.StatusCancelled {
			reservation.CancelledAt = ptr.Ptr(now)
		}
		result.Reservation = models.FromDomainReservation(reservation, models.NewLookup(doc))
		result.Changed = true
		return nil
	})

	switch {
	case errors.Is(err, errUnchanged):
		s.logger.Info("SetStatus: reservation=%s already %s", reservationID, status)
		return result, nil
	case errors.Is(err, ErrReservationNotFound):
		s.logger.Warn("SetStatus: reservation=%s not found", reservationID)
		return nil, err
	case errors.Is(err, ErrInvalidTransition):
		s.logger.Warn("SetStatus: reservation=%s: %v", reservationID, err)
		return nil, err
	case err != nil:
		s.logger.Error("SetStatus: failed to save reservation=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: SetStatus - store error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: reservation=%s is now %s", reservationID, status)
	return result, nil
}

// Schedule возвращает агенду за месяц (YYYY-MM), некорректный месяц заменяется текущим
func (s *Service) Schedule(ctx context.Context, month string) (*models.ScheduleResponse, error) {
	s.logger.Info("Schedule: month=%q", month)

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Schedule: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: Schedule - store error: %v", ErrInternal, err)
	}

	return buildSchedule(doc, month, s.timeProvider.Now()), nil
}
