package domain

import "time"

// ReportPeriod selects which records a report covers
type ReportPeriod string

const (
	PeriodAll   ReportPeriod = "all"
	PeriodDay   ReportPeriod = "day"
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
	PeriodYear  ReportPeriod = "year"
)

// ParsePeriod falls back to PeriodAll for unknown values
func ParsePeriod(s string) ReportPeriod {
	for _, p := range ReportPeriods {
		if string(p) == s {
			return p
		}
	}
	return PeriodAll
}

// InPeriod reports whether t falls into the period relative to now.
// week is the trailing 7 days starting at midnight six days ago.
// A zero t belongs only to PeriodAll.
func InPeriod(period ReportPeriod, t, now time.Time) bool {
	if period == PeriodAll {
		return true
	}
	if t.IsZero() {
		return false
	}

	t = t.In(now.Location())
	switch period {
	case PeriodDay:
		return sameDay(t, now)
	case PeriodWeek:
		return !t.Before(StartOfDay(now).AddDate(0, 0, -6))
	case PeriodMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case PeriodYear:
		return t.Year() == now.Year()
	}
	return false
}

// StartOfDay returns midnight of t in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
