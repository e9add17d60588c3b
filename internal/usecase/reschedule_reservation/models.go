package reschedule_reservation

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	ReservationID string
	Date          string           // YYYY-MM-DD
	Time          types.TimeString // HH:MM
}

// Response перенесенное бронирование
type Response struct {
	Reservation domain.Reservation
}
