package cart

import "errors"

var (
	// ErrServiceNotFound возвращается при добавлении несуществующей услуги
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart: internal error")
)
