package ports

import (
	"context"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// CreateUserInput carries the data for a new user. ClientID/ClientSecret are
// optional; the service generates a credential pair when they are absent.
type CreateUserInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	ClientID     string
	ClientSecret string
}

// UserService manages accounts. The HTTP surface gates these operations to
// admins; the service itself only enforces existence and field validity.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, patch UserPatch) error
	DeleteUser(ctx context.Context, id string) error
}
