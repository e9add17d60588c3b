package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, true},
		{StatusPending, StatusPending, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestReservationStatusHelpers(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, ReservationStatus("rescheduled").IsValid())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())

	r := Reservation{Status: StatusConfirmed}
	assert.True(t, r.CanBeCancelled())
	r.Status = StatusCompleted
	assert.False(t, r.CanBeRescheduled())
}

func TestReservationScheduledAt(t *testing.T) {
	r := Reservation{Date: "2025-06-10", Time: "09:30"}
	got, ok := r.ScheduledAt(time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), got)

	r = Reservation{Date: "2025-06-10"}
	got, ok = r.ScheduledAt(time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), got)

	r = Reservation{Date: "10/06/2025", Time: "09:30"}
	_, ok = r.ScheduledAt(time.UTC)
	assert.False(t, ok)
}
