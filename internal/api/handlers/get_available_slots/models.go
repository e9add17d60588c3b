package get_available_slots

import (
	"strconv"

	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StaffID         string          `json:"staffId"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest собирает запрос use case; пустая длительность означает шаг сетки
func ToUseCaseRequest(staffID, date, duration string) (*getAvailableSlots.Request, error) {
	minutes := 0
	if duration != "" {
		parsed, err := strconv.Atoi(duration)
		if err != nil {
			return nil, err
		}
		minutes = parsed
	}

	return &getAvailableSlots.Request{
		StaffID:         staffID,
		Date:            date,
		DurationMinutes: minutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		StaffID:         resp.StaffID,
		Date:            resp.Date,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
