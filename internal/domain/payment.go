package domain

import "time"

// PaymentStatus of a reservation
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// DebtStatus of a postpaid debt
type DebtStatus string

const (
	DebtStatusOpen DebtStatus = "open"
	DebtStatusPaid DebtStatus = "paid"
)

// Payment is an immutable record of money received
type Payment struct {
	ID             string        `json:"id"`
	ReservationID  *string       `json:"reservationId"`
	Amount         float64       `json:"amount"`
	Method         string        `json:"method"`
	Status         PaymentStatus `json:"status"`
	TransactionRef string        `json:"transactionRef"`
	PaidAt         time.Time     `json:"paidAt,omitzero"`
}

// Debt is created for a postpaid client who did not pay at checkout
type Debt struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"clientId"`
	ReservationID string     `json:"reservationId"`
	Amount        float64    `json:"amount"`
	Status        DebtStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt,omitzero"`
	PaymentID     *string    `json:"paymentId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// IsOpen returns true if the debt can still be settled
func (d *Debt) IsOpen() bool {
	return d.Status == DebtStatusOpen
}
