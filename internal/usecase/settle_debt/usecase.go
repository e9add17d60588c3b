package settle_debt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case погашения долга постоплатного клиента
type UseCase struct {
	store        DocumentStore
	ids          IDGenerator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store DocumentStore, ids IDGenerator, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		ids:          ids,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает платеж на сумму долга, связывает его с бронированием и закрывает долг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SettleDebt: debt=%s, method=%q", req.DebtID, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SettleDebt: validation failed: %v", err)
		return nil, err
	}
	method := strings.TrimSpace(req.PaymentMethod)

	now := uc.timeProvider.Now()
	var result Response

	// 2. Платеж и закрытие долга одной записью
	err := uc.store.Update(ctx, func(doc *domain.Document) error {
		debt := doc.FindDebt(req.DebtID)
		if debt == nil {
			uc.logger.Warn("SettleDebt: debt=%s not found", req.DebtID)
			return ErrDebtNotFound
		}
		if !debt.IsOpen() {
			uc.logger.Warn("SettleDebt: debt=%s is %s", debt.ID, debt.Status)
			return ErrDebtNotOpen
		}

		payment := domain.Payment{
			ID:             uc.ids.NewID(),
			ReservationID:  ptr.NonZero(debt.ReservationID),
			Amount:         debt.Amount,
			Method:         method,
			Status:         domain.PaymentStatusPaid,
			TransactionRef: uc.ids.NewTransactionRef(),
			PaidAt:         now,
		}
		doc.Payments = append(doc.Payments, payment)

		if reservation := doc.FindReservation(debt.ReservationID); reservation != nil {
			reservation.PaymentID = ptr.Ptr(payment.ID)
			reservation.PaymentStatus = domain.PaymentStatusPaid
			result.ReservationLinked = true
		} else {
			uc.logger.Warn("SettleDebt: reservation=%s of debt=%s not found, payment kept unlinked",
				debt.ReservationID, debt.ID)
		}

		debt.Status = domain.DebtStatusPaid
		debt.PaymentID = ptr.Ptr(payment.ID)
		debt.PaidAt = ptr.Ptr(now)

		result.Debt = *debt
		result.Payment = payment
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDebtNotFound) || errors.Is(err, ErrDebtNotOpen) {
			return nil, err
		}
		uc.logger.Error("SettleDebt: failed to save debt=%s: %v", req.DebtID, err)
		return nil, fmt.Errorf("%w: failed to save debt: %v", ErrInternal, err)
	}

	uc.metrics.IncDebtSettled(method)
	uc.logger.Info("SettleDebt: debt=%s settled with payment=%s (%s)", result.Debt.ID, result.Payment.ID, result.Payment.TransactionRef)
	return &result, nil
}
