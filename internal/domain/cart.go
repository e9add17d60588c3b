package domain

import "strings"

// CartLine is a priced cart line
type CartLine struct {
	ServiceID     string  `json:"serviceId"`
	Name          string  `json:"name"`
	Qty           int     `json:"qty"`
	UnitPrice     float64 `json:"unitPrice"`
	UnitDuration  int     `json:"unitDuration"`
	Subtotal      float64 `json:"subtotal"`
	DurationTotal int     `json:"durationTotal"`
}

// CartSummary is the priced view of a cart against the current catalog
type CartSummary struct {
	Lines         []CartLine `json:"lines"`
	TotalAmount   float64    `json:"totalAmount"`
	TotalDuration int        `json:"totalDuration"`
	TotalItems    int        `json:"totalItems"`
}

// IsEmpty returns true if no line resolved to an existing service
func (s *CartSummary) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Snapshot returns the cart items stored on a reservation
func (s *CartSummary) Snapshot() []CartItem {
	items := make([]CartItem, 0, len(s.Lines))
	for _, line := range s.Lines {
		items = append(items, CartItem{
			ServiceID:    line.ServiceID,
			Qty:          line.Qty,
			Name:         line.Name,
			UnitPrice:    line.UnitPrice,
			UnitDuration: line.UnitDuration,
		})
	}
	return items
}

// ServiceIDs returns service ids in cart order
func (s *CartSummary) ServiceIDs() []string {
	ids := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		ids = append(ids, line.ServiceID)
	}
	return ids
}

// BuildCartSummary prices the cart against services. Lines whose service no longer
// exists are dropped, input order is preserved.
func BuildCartSummary(cart []CartItem, services []Service) CartSummary {
	byID := indexServices(services)

	summary := CartSummary{Lines: make([]CartLine, 0, len(cart))}
	for _, item := range cart {
		service, ok := byID[item.ServiceID]
		if !ok {
			continue
		}
		line := CartLine{
			ServiceID:     service.ID,
			Name:          service.Name,
			Qty:           item.Qty,
			UnitPrice:     service.Price,
			UnitDuration:  service.Duration,
			Subtotal:      service.Price * float64(item.Qty),
			DurationTotal: service.Duration * item.Qty,
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalAmount += line.Subtotal
		summary.TotalDuration += line.DurationTotal
		summary.TotalItems += line.Qty
	}
	return summary
}

// NormalizeCart drops lines without a service id or with qty <= 0 and strips snapshot fields
func NormalizeCart(cart []CartItem) []CartItem {
	normalized := make([]CartItem, 0, len(cart))
	for _, item := range cart {
		id := strings.TrimSpace(item.ServiceID)
		if id == "" || item.Qty <= 0 {
			continue
		}
		normalized = append(normalized, CartItem{ServiceID: id, Qty: item.Qty})
	}
	return normalized
}

// AddToCart increments qty of an existing line or appends a new one with qty 1
func AddToCart(cart []CartItem, serviceID string) []CartItem {
	for i := range cart {
		if cart[i].ServiceID == serviceID {
			cart[i].Qty++
			return cart
		}
	}
	return append(cart, CartItem{ServiceID: serviceID, Qty: 1})
}

// RemoveFromCart decrements qty of a line and drops it when qty reaches zero.
// ok is false if the service is not in the cart.
func RemoveFromCart(cart []CartItem, serviceID string) (result []CartItem, ok bool) {
	result = make([]CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ServiceID == serviceID {
			ok = true
			item.Qty--
		}
		if item.Qty > 0 {
			result = append(result, item)
		}
	}
	return result, ok
}

// CartCount is the total quantity across lines
func CartCount(cart []CartItem) int {
	count := 0
	for _, item := range cart {
		count += item.Qty
	}
	return count
}

func indexServices(services []Service) map[string]Service {
	byID := make(map[string]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return byID
}
