package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case оформления корзины в бронирование
type UseCase struct {
	store        DocumentStore
	carts        CartStore
	ids          IDGenerator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store DocumentStore,
	carts CartStore,
	ids IDGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		carts:        carts,
		ids:          ids,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет оформление корзины клиента.
// Проверка конфликта и запись выполняются одним Store.Update, корзина очищается только после успешной записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: client=%s, staff=%s, date=%s, time=%s, method=%q",
		req.ClientID, req.StaffID, req.Date, req.Time, req.PaymentMethod)

	resp, err := uc.execute(ctx, req)
	if err != nil {
		uc.metrics.IncCheckoutRejected(rejectReason(err))
		return nil, err
	}

	uc.metrics.IncReservationCreated(string(resp.ClientType))
	return resp, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}
	start, _ := req.Time.Minutes()

	// 2. Корзина клиента
	cart, err := uc.carts.Get(ctx, req.ClientID)
	if err != nil {
		uc.logger.Error("Checkout: failed to get cart for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get cart: %v", ErrInternal, err)
	}
	cart = domain.NormalizeCart(cart)

	now := uc.timeProvider.Now()
	var result *Response

	// 3. Проверки и запись в одном обновлении документа
	err = uc.store.Update(ctx, func(doc *domain.Document) error {
		// 3.1. Клиент
		client := doc.FindClient(req.ClientID)
		if client == nil {
			uc.logger.Warn("Checkout: client=%s not found", req.ClientID)
			return ErrClientNotFound
		}
		clientType := domain.ClientTypeOf(client)

		// 3.2. Корзина по текущему каталогу
		summary := domain.BuildCartSummary(cart, doc.Services)
		if summary.IsEmpty() {
			uc.logger.Warn("Checkout: empty cart for client=%s", req.ClientID)
			return ErrEmptyCart
		}

		// 3.3. Профессионал
		if doc.FindStaff(req.StaffID) == nil {
			uc.logger.Warn("Checkout: staff=%s not found", req.StaffID)
			return ErrStaffNotFound
		}

		// 3.4. Способ оплаты обязателен для предоплатных
		if clientType == domain.ClientTypePrepaid && req.PaymentMethod == "" {
			uc.logger.Warn("Checkout: prepaid client=%s without payment method", req.ClientID)
			return ErrPaymentMethodRequired
		}

		// 3.5. Пересечение по полной длительности
		if conflict := domain.FindConflict(doc, req.StaffID, req.Date, start, summary.TotalDuration, ""); conflict != nil {
			uc.logger.Warn("Checkout: staff=%s busy at %s %s, conflicts with reservation=%s",
				req.StaffID, req.Date, req.Time, conflict.ID)
			return ErrTimeConflict
		}

		// 3.6. Бронирование
		reservation := domain.Reservation{
			ID:                  uc.ids.NewID(),
			ClientID:            client.ID,
			ClientTypeAtBooking: clientType,
			ServiceID:           summary.Lines[0].ServiceID,
			ServiceIDs:          summary.ServiceIDs(),
			CartItems:           summary.Snapshot(),
			TotalAmount:         summary.TotalAmount,
			TotalDuration:       summary.TotalDuration,
			DurationSource:      domain.DurationExplicit,
			StaffID:             req.StaffID,
			Date:                req.Date,
			Time:                req.Time,
			Status:              domain.StatusPending,
			PaymentStatus:       domain.PaymentStatusUnpaid,
			CreatedAt:           now,
		}
		resp := &Response{ClientType: clientType}

		// 3.7. Оплата или долг
		if req.PaymentMethod != "" {
			payment := domain.Payment{
				ID:             uc.ids.NewID(),
				ReservationID:  ptr.Ptr(reservation.ID),
				Amount:         summary.TotalAmount,
				Method:         req.PaymentMethod,
				Status:         domain.PaymentStatusPaid,
				TransactionRef: uc.ids.NewTransactionRef(),
				PaidAt:         now,
			}
			reservation.PaymentID = ptr.Ptr(payment.ID)
			reservation.PaymentStatus = domain.PaymentStatusPaid
			doc.Payments = append(doc.Payments, payment)
			resp.Payment = &payment
		} else if clientType == domain.ClientTypePostpaid {
			debt := domain.Debt{
				ID:            uc.ids.NewID(),
				ClientID:      client.ID,
				ReservationID: reservation.ID,
				Amount:        summary.TotalAmount,
				Status:        domain.DebtStatusOpen,
				CreatedAt:     now,
			}
			doc.Debts = append(doc.Debts, debt)
			resp.Debt = &debt
		}

		doc.Reservations = append(doc.Reservations, reservation)
		resp.Reservation = reservation
		result = resp
		return nil
	})

	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		uc.logger.Error("Checkout: failed to save reservation for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to save reservation: %v", ErrInternal, err)
	}

	// 4. Очистка корзины, бронирование уже сохранено
	if err := uc.carts.Clear(ctx, req.ClientID); err != nil {
		uc.logger.Warn("Checkout: failed to clear cart for client=%s: %v", req.ClientID, err)
	}

	uc.logger.Info("Checkout: created reservation id=%s, total=%.2f, duration=%d, debt=%t",
		result.Reservation.ID, result.Reservation.TotalAmount, result.Reservation.TotalDuration, result.DebtCreated())
	return result, nil
}

var businessErrors = []error{
	ErrInvalidInput,
	ErrClientNotFound,
	ErrEmptyCart,
	ErrStaffNotFound,
	ErrPaymentMethodRequired,
	ErrTimeConflict,
}

func isBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// rejectReason метка причины отказа для метрик
func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrClientNotFound):
		return "client_not_found"
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, ErrStaffNotFound):
		return "staff_not_found"
	case errors.Is(err, ErrPaymentMethodRequired):
		return "payment_method_required"
	case errors.Is(err, ErrTimeConflict):
		return "time_conflict"
	}
	return "internal"
}
