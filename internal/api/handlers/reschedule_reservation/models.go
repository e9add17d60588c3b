package reschedule_reservation

import (
	"strings"

	rescheduleUC "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_reservation"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date string `json:"date"` // "2025-03-12"
	Time string `json:"time"` // "14:30"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(reservationID string) (*rescheduleUC.Request, error) {
	start, err := types.NewTimeStringFromString(strings.TrimSpace(r.Time))
	if err != nil {
		return nil, err
	}
	return &rescheduleUC.Request{
		ReservationID: reservationID,
		Date:          strings.TrimSpace(r.Date),
		Time:          start,
	}, nil
}
