package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// RegisterRequest данные регистрации клиента
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// LoginRequest данные входа
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse пользователь без хеша пароля
type UserResponse struct {
	ID         string            `json:"id"`
	Role       domain.Role       `json:"role"`
	ClientType domain.ClientType `json:"clientType,omitempty"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	CreatedAt  *time.Time        `json:"createdAt,omitempty"`
}

// LoginResponse токен сессии и пользователь
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// DebtResponse долг с именем клиента
type DebtResponse struct {
	ID            string            `json:"id"`
	ClientID      string            `json:"clientId"`
	ClientName    string            `json:"clientName,omitempty"`
	ReservationID string            `json:"reservationId"`
	Amount        float64           `json:"amount"`
	Status        domain.DebtStatus `json:"status"`
	CreatedAt     *time.Time        `json:"createdAt,omitempty"`
	PaymentID     *string           `json:"paymentId,omitempty"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`
}

// ClientsResponse список клиентов с поиском и долгами
type ClientsResponse struct {
	Query   string              `json:"query"`
	Counts  domain.ClientCounts `json:"counts"`
	Clients []UserResponse      `json:"clients"`
	Debts   []DebtResponse      `json:"debts"`
}

// FromDomainUser конвертирует пользователя; для клиентов тип нормализуется
func FromDomainUser(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:    u.ID,
		Role:  u.Role,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
	if u.IsClient() {
		resp.ClientType = domain.ClientTypeOf(u)
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func FromDomainDebt(d *domain.Debt, clientName string) DebtResponse {
	resp := DebtResponse{
		ID:            d.ID,
		ClientID:      d.ClientID,
		ClientName:    clientName,
		ReservationID: d.ReservationID,
		Amount:        d.Amount,
		Status:        d.Status,
		PaymentID:     d.PaymentID,
		PaidAt:        d.PaidAt,
	}
	if !d.CreatedAt.IsZero() {
		createdAt := d.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}
