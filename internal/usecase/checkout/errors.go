package checkout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input data")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("checkout: client not found")

	// ErrEmptyCart возвращается, когда в корзине нет существующих услуг
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrStaffNotFound возвращается, когда профессионал не найден
	ErrStaffNotFound = errors.New("checkout: staff not found")

	// ErrPaymentMethodRequired возвращается, когда предоплатный клиент не указал способ оплаты
	ErrPaymentMethodRequired = errors.New("checkout: payment method is required for prepaid clients")

	// ErrTimeConflict возвращается, когда интервал пересекается с другим бронированием профессионала
	ErrTimeConflict = errors.New("checkout: time slot is not available for the total duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)
