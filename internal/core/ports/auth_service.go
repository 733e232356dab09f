package ports

import (
	"context"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// TokenClaims is the decoded content of a session token.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Actor converts claims into the authorization subject used by the services.
func (c TokenClaims) Actor() domain.Actor {
	return domain.Actor{ID: c.UserID, Role: c.Role}
}

// AuthResult is returned by a successful credential exchange.
type AuthResult struct {
	Token string
	User  domain.PublicUser
}

// AuthService exchanges long-lived client credentials for short-lived signed
// session tokens and verifies tokens on demand.
type AuthService interface {
	Authenticate(ctx context.Context, clientID, clientSecret string) (*AuthResult, error)
	VerifyToken(token string) (TokenClaims, error)
}
