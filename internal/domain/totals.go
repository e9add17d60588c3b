package domain

import "time"

// StatusTotals counts reservations per status
type StatusTotals struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

// Revenue is the sum of paid payments, overall and for the current month
type Revenue struct {
	Total   float64 `json:"total"`
	Monthly float64 `json:"monthly"`
}

// ReservationTotals counts reservations by status
func ReservationTotals(reservations []Reservation) StatusTotals {
	var totals StatusTotals
	for _, r := range reservations {
		totals.Total++
		switch r.Status {
		case StatusPending:
			totals.Pending++
		case StatusConfirmed:
			totals.Confirmed++
		case StatusCancelled:
			totals.Cancelled++
		case StatusCompleted:
			totals.Completed++
		}
	}
	return totals
}

// RevenueTotals sums paid payments; monthly counts those paid in now's month and year
func RevenueTotals(payments []Payment, now time.Time) Revenue {
	var revenue Revenue
	for _, p := range payments {
		if p.Status != PaymentStatusPaid {
			continue
		}
		revenue.Total += p.Amount
		paidAt := p.PaidAt.In(now.Location())
		if paidAt.Year() == now.Year() && paidAt.Month() == now.Month() {
			revenue.Monthly += p.Amount
		}
	}
	return revenue
}

// Percent returns round(part/total*100), 0 when total is 0
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
