package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestResolveDuration(t *testing.T) {
	tests := []struct {
		name       string
		r          Reservation
		want       int
		wantSource DurationSource
	}{
		{
			name:       "stored duration wins",
			r:          Reservation{TotalDuration: 95, CartItems: []CartItem{{ServiceID: "svc-a", Qty: 1}}},
			want:       95,
			wantSource: DurationExplicit,
		},
		{
			name:       "cart items against catalog",
			r:          Reservation{CartItems: []CartItem{{ServiceID: "svc-a", Qty: 1}, {ServiceID: "svc-c", Qty: 2}}},
			want:       100,
			wantSource: DurationCart,
		},
		{
			name:       "cart qty missing counts once",
			r:          Reservation{CartItems: []CartItem{{ServiceID: "svc-b"}}},
			want:       45,
			wantSource: DurationCart,
		},
		{
			name:       "legacy single service",
			r:          Reservation{ServiceID: "svc-b"},
			want:       45,
			wantSource: DurationLegacy,
		},
		{
			name:       "cart services deleted gives zero",
			r:          Reservation{ServiceID: "svc-c", CartItems: []CartItem{{ServiceID: "gone", Qty: 1}}},
			want:       0,
			wantSource: DurationCart,
		},
		{
			name:       "nothing resolvable",
			r:          Reservation{ServiceID: "gone"},
			want:       60,
			wantSource: DurationDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := ResolveDuration(&tt.r, testCatalog)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestNormalizeDurations(t *testing.T) {
	doc := NewDocument()
	doc.Services = testCatalog
	doc.Reservations = []Reservation{
		{ID: "r1", TotalDuration: 30},
		{ID: "r2", ServiceID: "svc-a"},
		{ID: "r3"},
		{ID: "r4", CartItems: []CartItem{{ServiceID: "gone", Qty: 1}}},
	}

	assert.Equal(t, 3, NormalizeDurations(doc))
	assert.Equal(t, DurationExplicit, doc.Reservations[0].DurationSource)
	assert.Equal(t, 60, doc.Reservations[1].TotalDuration)
	assert.Equal(t, DurationLegacy, doc.Reservations[1].DurationSource)
	assert.Equal(t, DurationDefault, doc.Reservations[2].DurationSource)
	assert.Equal(t, 0, doc.Reservations[3].TotalDuration)
	assert.Equal(t, DurationCart, doc.Reservations[3].DurationSource)

	// второй проход ничего не меняет
	assert.Equal(t, 0, NormalizeDurations(doc))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd int
		bStart, bEnd int
		want         bool
	}{
		{name: "inside", aStart: 570, aEnd: 600, bStart: 540, bEnd: 600, want: true},
		{name: "touching end", aStart: 600, aEnd: 630, bStart: 540, bEnd: 600, want: false},
		{name: "touching start", aStart: 510, aEnd: 540, bStart: 540, bEnd: 600, want: false},
		{name: "covering", aStart: 500, aEnd: 700, bStart: 540, bEnd: 600, want: true},
		{name: "disjoint", aStart: 700, aEnd: 730, bStart: 540, bEnd: 600, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestFindConflict(t *testing.T) {
	doc := NewDocument()
	doc.Services = testCatalog
	doc.Reservations = []Reservation{
		{ID: "held", StaffID: "s1", Date: "2025-06-10", Time: "09:00", TotalDuration: 60, Status: StatusConfirmed},
		{ID: "gone", StaffID: "s1", Date: "2025-06-10", Time: "11:00", TotalDuration: 60, Status: StatusCancelled},
		{ID: "legacy", StaffID: "s1", Date: "2025-06-10", Time: "14:00", ServiceID: "svc-b", Status: StatusPending},
	}

	start := func(s string) int {
		m, err := types.TimeString(s).Minutes()
		require.NoError(t, err)
		return m
	}

	assert.NotNil(t, FindConflict(doc, "s1", "2025-06-10", start("09:30"), 30, ""))
	assert.Nil(t, FindConflict(doc, "s1", "2025-06-10", start("10:00"), 30, ""))
	assert.Nil(t, FindConflict(doc, "s1", "2025-06-10", start("08:00"), 60, ""))
	assert.Nil(t, FindConflict(doc, "s1", "2025-06-10", start("11:00"), 60, ""), "cancelled reservations free the slot")
	assert.NotNil(t, FindConflict(doc, "s1", "2025-06-10", start("14:30"), 30, ""), "legacy reservation uses catalog duration")
	assert.Nil(t, FindConflict(doc, "s1", "2025-06-10", start("14:45"), 30, ""))
	assert.Nil(t, FindConflict(doc, "s2", "2025-06-10", start("09:30"), 30, ""))
	assert.Nil(t, FindConflict(doc, "s1", "2025-06-11", start("09:30"), 30, ""))
	assert.Nil(t, FindConflict(doc, "s1", "2025-06-10", start("09:30"), 30, "held"))
}

func TestFindExactSlot(t *testing.T) {
	doc := NewDocument()
	doc.Reservations = []Reservation{
		{ID: "a", StaffID: "s1", Date: "2025-06-10", Time: "09:00", TotalDuration: 60, Status: StatusConfirmed},
		{ID: "b", StaffID: "s1", Date: "2025-06-10", Time: "15:00", TotalDuration: 60, Status: StatusCancelled},
	}

	assert.NotNil(t, FindExactSlot(doc, "s1", "2025-06-10", "09:00", "other"))
	assert.Nil(t, FindExactSlot(doc, "s1", "2025-06-10", "09:30", "other"), "exact match only, overlap is ignored")
	assert.Nil(t, FindExactSlot(doc, "s1", "2025-06-10", "09:00", "a"))
	assert.Nil(t, FindExactSlot(doc, "s1", "2025-06-10", "15:00", "other"))
}
