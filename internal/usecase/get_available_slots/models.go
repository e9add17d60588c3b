package get_available_slots

import "github.com/m04kA/SMC-SalonService/pkg/types"

// WorkingHours рабочие часы салона и правила подбора слотов
type WorkingHours struct {
	Open             types.TimeString
	Close            types.TimeString
	StepMinutes      int
	MinNoticeMinutes int // минимальный запас до начала слота на сегодня
	AdvanceDays      int // 0 - без ограничения
}

// Request модель запроса на получение слотов профессионала
type Request struct {
	StaffID         string
	Date            string // YYYY-MM-DD
	DurationMinutes int    // длительность визита; <= 0 - шаг сетки
}

// Response модель ответа со списком слотов
type Response struct {
	StaffID         string
	Date            string
	DurationMinutes int
	Slots           []Slot
}

// Slot начало визита и его доступность
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
