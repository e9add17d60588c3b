package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// ResolveDuration returns the reservation length in minutes and where it came from.
// Order: stored totalDuration, cart items against the current catalog,
// legacy single serviceId, DefaultReservationDurationMinutes.
// A reservation with cart items never falls through: if every item's service was deleted
// its duration is 0.
func ResolveDuration(r *Reservation, services []Service) (int, DurationSource) {
	if r.TotalDuration > 0 {
		return r.TotalDuration, DurationExplicit
	}

	byID := indexServices(services)

	if len(r.CartItems) > 0 {
		total := 0
		for _, item := range r.CartItems {
			service, ok := byID[item.ServiceID]
			if !ok {
				continue
			}
			qty := item.Qty
			if qty <= 0 {
				qty = 1
			}
			total += service.Duration * qty
		}
		return total, DurationCart
	}

	if service, ok := byID[r.ServiceID]; ok && r.ServiceID != "" && service.Duration > 0 {
		return service.Duration, DurationLegacy
	}

	return DefaultReservationDurationMinutes, DurationDefault
}

// NormalizeDurations fills totalDuration once for reservations that predate it.
// Returns the number of reservations changed.
func NormalizeDurations(doc *Document) int {
	changed := 0
	for i := range doc.Reservations {
		r := &doc.Reservations[i]
		if r.TotalDuration > 0 {
			if r.DurationSource == "" {
				r.DurationSource = DurationExplicit
			}
			continue
		}
		if r.DurationSource != "" {
			continue
		}
		r.TotalDuration, r.DurationSource = ResolveDuration(r, doc.Services)
		changed++
	}
	return changed
}

// Overlaps is a half-open interval test: touching endpoints do not overlap
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// FindConflict returns the first non-cancelled reservation of staffID on date whose
// interval overlaps [start, start+duration). excludeID is skipped.
func FindConflict(doc *Document, staffID, date string, start, duration int, excludeID string) *Reservation {
	end := start + duration
	for i := range doc.Reservations {
		r := &doc.Reservations[i]
		if r.ID == excludeID || r.StaffID != staffID || r.Date != date || r.IsCancelled() {
			continue
		}
		existingStart, err := r.Time.Minutes()
		if err != nil {
			continue
		}
		existingDuration, _ := ResolveDuration(r, doc.Services)
		if Overlaps(start, end, existingStart, existingStart+existingDuration) {
			return r
		}
	}
	return nil
}

// FindExactSlot returns a non-cancelled reservation of staffID at exactly date and time.
// excludeID is skipped.
func FindExactSlot(doc *Document, staffID, date string, t types.TimeString, excludeID string) *Reservation {
	for i := range doc.Reservations {
		r := &doc.Reservations[i]
		if r.ID == excludeID || r.StaffID != staffID || r.IsCancelled() {
			continue
		}
		if r.Date == date && r.Time == t {
			return r
		}
	}
	return nil
}
