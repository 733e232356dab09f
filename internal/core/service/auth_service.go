package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// AuthService exchanges client credentials for signed session tokens.
// It is stateless apart from the signing secret and token TTL, both fixed
// for the process lifetime.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Authenticate looks up the user holding the exact (clientID, clientSecret)
// pair and issues a token embedding its id, email and role. The returned
// user view never carries the password hash or client secret.
func (s *AuthService) Authenticate(ctx context.Context, clientID, clientSecret string) (*ports.AuthResult, error) {
	if clientID == "" || clientSecret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByClientCredentials(ctx, clientID, clientSecret)
	if err != nil {
		return nil, fmt.Errorf("find by client credentials: %w", err)
	}
	if user == nil {
		s.logger.Warn().Str("client_id", clientID).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login accepted")

	return &ports.AuthResult{Token: token, User: user.Public()}, nil
}

// VerifyToken validates signature and expiration, returning the embedded
// claims. Any parse or validation failure collapses into ErrInvalidToken.
func (s *AuthService) VerifyToken(token string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	return ports.TokenClaims{UserID: userID, Email: email, Role: role}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
