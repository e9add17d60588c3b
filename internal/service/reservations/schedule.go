package reservations

import (
	"regexp"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

const calendarCells = 42

var monthParamRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Marco", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var weekdayNames = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sab"}

// monthStart первый день запрошенного месяца в часовом поясе now
func monthStart(month string, now time.Time) time.Time {
	if monthParamRe.MatchString(month) {
		if parsed, err := time.ParseInLocation(domain.MonthFormat, month, now.Location()); err == nil {
			return parsed
		}
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// sortByScheduleDesc сортирует по дате и времени, поздние первыми
func sortByScheduleDesc(list []domain.Reservation) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].Date+"T"+list[i].Time.String(), list[j].Date+"T"+list[j].Time.String()
		return a > b
	})
}

func buildSchedule(doc *domain.Document, month string, now time.Time) *models.ScheduleResponse {
	start := monthStart(month, now)
	end := start.AddDate(0, 1, -1)
	lookup := models.NewLookup(doc)

	// 1. Список: поздние первыми
	all := make([]domain.Reservation, len(doc.Reservations))
	copy(all, doc.Reservations)
	sortByScheduleDesc(all)

	// 2. Группировка по дате, внутри дня по времени
	byDate := make(map[string][]domain.Reservation)
	for _, r := range all {
		byDate[r.Date] = append(byDate[r.Date], r)
	}
	for _, day := range byDate {
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Time.String() < day[j].Time.String()
		})
	}

	// 3. Сетка 6x7 с воскресенья до первого числа
	gridStart := start.AddDate(0, 0, -int(start.Weekday()))
	days := make([]models.CalendarDay, 0, calendarCells)
	for i := 0; i < calendarCells; i++ {
		current := gridStart.AddDate(0, 0, i)
		key := current.Format(domain.DateFormat)
		days = append(days, models.CalendarDay{
			Date:           key,
			Day:            current.Day(),
			InCurrentMonth: current.Month() == start.Month(),
			Reservations:   models.FromDomainReservationList(byDate[key], lookup),
		})
	}

	return &models.ScheduleResponse{
		Month:        start.Format(domain.MonthFormat),
		MonthLabel:   monthNames[start.Month()-1] + " " + start.Format("2006"),
		PrevMonth:    start.AddDate(0, -1, 0).Format(domain.MonthFormat),
		NextMonth:    start.AddDate(0, 1, 0).Format(domain.MonthFormat),
		MonthRange:   models.MonthRange{Start: start.Format(domain.DateFormat), End: end.Format(domain.DateFormat)},
		WeekdayNames: weekdayNames,
		Reservations: models.FromDomainReservationList(all, lookup),
		CalendarDays: days,
	}
}
