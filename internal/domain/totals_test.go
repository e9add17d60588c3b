package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationTotals(t *testing.T) {
	totals := ReservationTotals([]Reservation{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusConfirmed},
		{Status: StatusCancelled},
		{Status: StatusCompleted},
	})

	assert.Equal(t, StatusTotals{Total: 5, Pending: 2, Confirmed: 1, Cancelled: 1, Completed: 1}, totals)
}

func TestRevenueTotals(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	revenue := RevenueTotals([]Payment{
		{Amount: 900, Status: PaymentStatusPaid, PaidAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{Amount: 600, Status: PaymentStatusPaid, PaidAt: time.Date(2025, 5, 31, 10, 0, 0, 0, time.UTC)},
		{Amount: 300, Status: PaymentStatusPaid, PaidAt: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)},
		{Amount: 5000, Status: "refunded", PaidAt: now},
	}, now)

	assert.Equal(t, Revenue{Total: 1800, Monthly: 900}, revenue)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(4, 4))
}

func TestInPeriod(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period ReportPeriod
		t      time.Time
		want   bool
	}{
		{name: "all accepts zero", period: PeriodAll, t: time.Time{}, want: true},
		{name: "day rejects zero", period: PeriodDay, t: time.Time{}, want: false},
		{name: "same day", period: PeriodDay, t: time.Date(2025, 6, 15, 0, 5, 0, 0, time.UTC), want: true},
		{name: "yesterday", period: PeriodDay, t: time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), want: false},
		{name: "week start midnight", period: PeriodWeek, t: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), want: true},
		{name: "week before start", period: PeriodWeek, t: time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC), want: false},
		{name: "month", period: PeriodMonth, t: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "month other year", period: PeriodMonth, t: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), want: false},
		{name: "year", period: PeriodYear, t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "last year", period: PeriodYear, t: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InPeriod(tt.period, tt.t, now))
		})
	}
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodAll, ParsePeriod("decade"))
	assert.Equal(t, PeriodAll, ParsePeriod(""))
}
