package settle_debt

import "errors"

var (
	// ErrPaymentMethodRequired возвращается, когда способ оплаты не указан
	ErrPaymentMethodRequired = errors.New("settle_debt: payment method is required")

	// ErrDebtNotFound возвращается, когда долг не найден
	ErrDebtNotFound = errors.New("settle_debt: debt not found")

	// ErrDebtNotOpen возвращается, когда долг уже погашен
	ErrDebtNotOpen = errors.New("settle_debt: debt is not open")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("settle_debt: internal error")
)
