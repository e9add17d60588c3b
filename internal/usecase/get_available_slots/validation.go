package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// максимальная длительность визита в минутах
const maxDurationMinutes = 24 * 60

// validateRequest валидирует входные данные и возвращает дату в локации now
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(req.StaffID) == "" {
		return time.Time{}, fmt.Errorf("%w: staffID is required", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes > maxDurationMinutes {
		return time.Time{}, fmt.Errorf("%w: duration exceeds %d minutes", ErrInvalidInput, maxDurationMinutes)
	}

	return date, nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(requestDate time.Time, now time.Time, advanceDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	if advanceDays == 0 {
		return nil
	}

	maxDate := domain.StartOfDay(now).AddDate(0, 0, advanceDays)
	if domain.StartOfDay(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceDays)
	}

	return nil
}
