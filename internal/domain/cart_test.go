package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCatalog = []Service{
	{ID: "svc-a", Name: "Corte Feminino", Price: 900, Duration: 60},
	{ID: "svc-b", Name: "Corte Masculino", Price: 600, Duration: 45},
	{ID: "svc-c", Name: "Sobrancelha", Price: 300, Duration: 20},
}

func TestBuildCartSummary(t *testing.T) {
	tests := []struct {
		name         string
		cart         []CartItem
		wantAmount   float64
		wantDuration int
		wantItems    int
		wantLines    []string
	}{
		{
			name:         "two services",
			cart:         []CartItem{{ServiceID: "svc-a", Qty: 1}, {ServiceID: "svc-b", Qty: 1}},
			wantAmount:   1500,
			wantDuration: 105,
			wantItems:    2,
			wantLines:    []string{"svc-a", "svc-b"},
		},
		{
			name:         "quantity multiplies",
			cart:         []CartItem{{ServiceID: "svc-c", Qty: 3}},
			wantAmount:   900,
			wantDuration: 60,
			wantItems:    3,
			wantLines:    []string{"svc-c"},
		},
		{
			name:         "deleted service dropped, order kept",
			cart:         []CartItem{{ServiceID: "svc-b", Qty: 2}, {ServiceID: "gone", Qty: 5}, {ServiceID: "svc-a", Qty: 1}},
			wantAmount:   2100,
			wantDuration: 150,
			wantItems:    3,
			wantLines:    []string{"svc-b", "svc-a"},
		},
		{
			name:      "empty cart",
			cart:      nil,
			wantLines: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := BuildCartSummary(tt.cart, testCatalog)

			assert.Equal(t, tt.wantAmount, summary.TotalAmount)
			assert.Equal(t, tt.wantDuration, summary.TotalDuration)
			assert.Equal(t, tt.wantItems, summary.TotalItems)
			assert.Equal(t, tt.wantLines, summary.ServiceIDs())
			assert.Equal(t, len(tt.wantLines) == 0, summary.IsEmpty())
		})
	}
}

func TestCartSummarySnapshot(t *testing.T) {
	summary := BuildCartSummary([]CartItem{{ServiceID: "svc-a", Qty: 2}}, testCatalog)

	assert.Equal(t, []CartItem{
		{ServiceID: "svc-a", Qty: 2, Name: "Corte Feminino", UnitPrice: 900, UnitDuration: 60},
	}, summary.Snapshot())
}

func TestNormalizeCart(t *testing.T) {
	cart := []CartItem{
		{ServiceID: "svc-a", Qty: 1, Name: "stale"},
		{ServiceID: "", Qty: 2},
		{ServiceID: "svc-b", Qty: 0},
		{ServiceID: " svc-c ", Qty: -1},
		{ServiceID: "svc-c", Qty: 4},
	}

	assert.Equal(t, []CartItem{
		{ServiceID: "svc-a", Qty: 1},
		{ServiceID: "svc-c", Qty: 4},
	}, NormalizeCart(cart))
}

func TestAddAndRemoveFromCart(t *testing.T) {
	cart := AddToCart(nil, "svc-a")
	cart = AddToCart(cart, "svc-b")
	cart = AddToCart(cart, "svc-a")
	assert.Equal(t, []CartItem{{ServiceID: "svc-a", Qty: 2}, {ServiceID: "svc-b", Qty: 1}}, cart)
	assert.Equal(t, 3, CartCount(cart))

	cart, ok := RemoveFromCart(cart, "svc-b")
	assert.True(t, ok)
	assert.Equal(t, []CartItem{{ServiceID: "svc-a", Qty: 2}}, cart)

	cart, ok = RemoveFromCart(cart, "svc-a")
	assert.True(t, ok)
	assert.Equal(t, []CartItem{{ServiceID: "svc-a", Qty: 1}}, cart)

	_, ok = RemoveFromCart(cart, "missing")
	assert.False(t, ok)
}
