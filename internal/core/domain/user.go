package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin       = "admin"
	RoleColaborador = "colaborador"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email or client id already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")

// User models an account in the tracker. Password holds a bcrypt hash and,
// like ClientSecret, is write-only: neither is ever rendered in JSON.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Role         string    `json:"role"`
	ClientID     string    `json:"client_id,omitempty"`
	ClientSecret string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the redacted view returned by login and user read endpoints.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips credential material from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleColaborador
}
