package reschedule_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных дате или времени
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrInvalidState возвращается для отмененных и завершенных бронирований
	ErrInvalidState = errors.New("reschedule_reservation: reservation cannot be rescheduled")

	// ErrTimeConflict возвращается, когда у профессионала уже есть бронирование на это время
	ErrTimeConflict = errors.New("reschedule_reservation: time slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
