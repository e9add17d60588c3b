package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case переноса бронирования администратором
type UseCase struct {
	store        DocumentStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store DocumentStore, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит бронирование на новые дату и время.
// Конфликт проверяется только по точному совпадению даты и времени у того же профессионала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: reservation=%s, date=%s, time=%s", req.ReservationID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var result domain.Reservation

	// 2. Проверка и запись
	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		reservation := doc.FindReservation(req.ReservationID)
		if reservation == nil {
			uc.logger.Warn("RescheduleReservation: reservation=%s not found", req.ReservationID)
			return ErrReservationNotFound
		}

		if !reservation.CanBeRescheduled() {
			uc.logger.Warn("RescheduleReservation: reservation=%s is %s", reservation.ID, reservation.Status)
			return fmt.Errorf("%w: status is %s", ErrInvalidState, reservation.Status)
		}

		if taken := domain.FindExactSlot(doc, reservation.StaffID, req.Date, req.Time, reservation.ID); taken != nil {
			uc.logger.Warn("RescheduleReservation: staff=%s already has reservation=%s at %s %s",
				reservation.StaffID, taken.ID, req.Date, req.Time)
			return ErrTimeConflict
		}

		reservation.Date = req.Date
		reservation.Time = req.Time
		reservation.Status = domain.StatusConfirmed
		reservation.RescheduledAt = ptr.Ptr(now)

		result = *reservation
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrInvalidState) || errors.Is(err, ErrTimeConflict) {
			return nil, err
		}
		uc.logger.Error("RescheduleReservation: failed to save reservation=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to save reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleReservation: reservation=%s moved to %s %s", result.ID, result.Date, result.Time)
	return &Response{Reservation: result}, nil
}
