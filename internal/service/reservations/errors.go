package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено или принадлежит другому клиенту
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotCancel возвращается при отмене отмененного или завершенного бронирования
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidTransition возвращается, когда переход между статусами запрещен
	ErrInvalidTransition = errors.New("reservation status transition is not allowed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)

// errUnchanged прерывает Update без записи
var errUnchanged = errors.New("reservations: unchanged")
