package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const midnight types.TimeString = "00:00"

// generateStarts возвращает начала визитов от открытия с шагом StepMinutes,
// чтобы визит длительностью duration заканчивался не позже закрытия.
// На сегодня остаются только начала не раньше now + MinNoticeMinutes.
func generateStarts(hours WorkingHours, duration int, requestDate, now time.Time) ([]int, error) {
	open, err := hours.Open.Minutes()
	if err != nil {
		return nil, err
	}
	closing, err := hours.Close.Minutes()
	if err != nil {
		return nil, err
	}

	earliest := open
	if isSameDay(requestDate, now) {
		notBefore := now.Hour()*60 + now.Minute() + hours.MinNoticeMinutes
		if notBefore > earliest {
			earliest = notBefore
		}
	}

	starts := make([]int, 0)
	for start := open; start+duration <= closing; start += hours.StepMinutes {
		if start < earliest {
			continue
		}
		starts = append(starts, start)
	}
	return starts, nil
}

// markAvailability помечает слоты, которые не пересекаются с активными бронированиями профессионала
func markAvailability(doc *domain.Document, staffID, date string, starts []int, duration int) ([]Slot, error) {
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		startTime, err := midnight.AddMinutes(start)
		if err != nil {
			return nil, err
		}
		endTime, err := startTime.AddMinutes(duration)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{
			StartTime: startTime,
			EndTime:   endTime,
			Available: domain.FindConflict(doc, staffID, date, start, duration, "") == nil,
		})
	}
	return slots, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.In(date1.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.StartOfDay(date).Before(domain.StartOfDay(now.In(date.Location())))
}
