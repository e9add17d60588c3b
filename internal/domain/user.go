package domain

import "time"

// Role is a fixed user role
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// ClientType defines how a client pays for reservations
type ClientType string

const (
	ClientTypePrepaid  ClientType = "prepaid"
	ClientTypePostpaid ClientType = "postpaid"
)

// IsValid returns true for the two known client types
func (t ClientType) IsValid() bool {
	return t == ClientTypePrepaid || t == ClientTypePostpaid
}

// User is either an administrator or a client. Role never changes after creation.
type User struct {
	ID           string     `json:"id"`
	Role         Role       `json:"role"`
	ClientType   ClientType `json:"clientType,omitempty"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt,omitzero"`
}

// IsClient returns true if the user has the client role
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
