package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// IsValid returns true for the four known statuses
func (s ReservationStatus) IsValid() bool {
	for _, known := range ReservationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses that accept no further transitions
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// allowedTransitions переходы, доступные администратору
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a reservation may move from one status to another.
// Setting the current status again is always allowed and changes nothing.
func CanTransition(from, to ReservationStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DurationSource records where a reservation's total duration came from
type DurationSource string

const (
	DurationExplicit DurationSource = "explicit" // stored at booking time
	DurationCart     DurationSource = "cart"     // derived from cart items against the catalog
	DurationLegacy   DurationSource = "legacy"   // single legacy serviceId
	DurationDefault  DurationSource = "default"  // nothing resolvable, 60 minutes
)

// CartItem is a cart line. Reservations keep name, price and duration as a snapshot.
type CartItem struct {
	ServiceID    string  `json:"serviceId"`
	Qty          int     `json:"qty"`
	Name         string  `json:"name,omitempty"`
	UnitPrice    float64 `json:"unitPrice,omitempty"`
	UnitDuration int     `json:"unitDuration,omitempty"`
}

// Reservation is an appointment booked by a client with a staff member
type Reservation struct {
	ID                  string            `json:"id"`
	ClientID            string            `json:"clientId"`
	ClientTypeAtBooking ClientType        `json:"clientTypeAtBooking,omitempty"`
	ServiceID           string            `json:"serviceId,omitempty"` // first cart line, legacy records only have this
	ServiceIDs          []string          `json:"serviceIds,omitempty"`
	CartItems           []CartItem        `json:"cartItems,omitempty"`
	TotalAmount         float64           `json:"totalAmount"`
	TotalDuration       int               `json:"totalDuration,omitempty"`
	DurationSource      DurationSource    `json:"durationSource,omitempty"`
	StaffID             string            `json:"staffId"`
	Date                string            `json:"date"`
	Time                types.TimeString  `json:"time"`
	Status              ReservationStatus `json:"status"`
	PaymentID           *string           `json:"paymentId"`
	PaymentStatus       PaymentStatus     `json:"paymentStatus,omitempty"`
	CreatedAt           time.Time         `json:"createdAt,omitzero"`
	CancelledAt         *time.Time        `json:"cancelledAt,omitempty"`
	RescheduledAt       *time.Time        `json:"rescheduledAt,omitempty"`
}

// IsCancelled returns true if the reservation no longer occupies its slot
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation is not in a terminal state
func (r *Reservation) CanBeCancelled() bool {
	return !r.Status.IsTerminal()
}

// CanBeRescheduled returns true if the reservation is not in a terminal state
func (r *Reservation) CanBeRescheduled() bool {
	return !r.Status.IsTerminal()
}

// ScheduledAt combines date and time in loc. ok is false when either part is malformed.
func (r *Reservation) ScheduledAt(loc *time.Location) (t time.Time, ok bool) {
	if r.Date == "" {
		return time.Time{}, false
	}
	layout := DateFormat + " " + TimeFormat
	value := r.Date + " " + r.Time.String()
	if r.Time.IsZero() {
		layout, value = DateFormat, r.Date
	}
	parsed, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
