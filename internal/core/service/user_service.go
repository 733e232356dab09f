package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// UserService manages accounts. Admin gating happens at the HTTP surface;
// here only existence and field validity are checked.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// CreateUser assigns a fresh id and, when the input carries no client
// credential pair, generates one. The repository hashes the password.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: role must be %s or %s", domain.ErrValidation, domain.RoleAdmin, domain.RoleColaborador)
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	clientID, clientSecret := input.ClientID, input.ClientSecret
	if clientID == "" {
		clientID = newClientID(input.Email)
	}
	if clientSecret == "" {
		clientSecret = uuid.NewString()
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password,
		Role:         input.Role,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		CreatedAt:    time.Now().UTC(),
	}

	return s.users.Create(ctx, user)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, patch ports.UserPatch) error {
	if !patch.HasFields() {
		return fmt.Errorf("%w: update contains no fields", domain.ErrValidation)
	}
	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *patch.Role)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	_, err = s.users.Update(ctx, id, patch)
	return err
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	_, err = s.users.Delete(ctx, id)
	return err
}

// newClientID derives a readable credential id from the email local part,
// suffixed to keep it unique.
func newClientID(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	return local + "_" + uuid.NewString()[:8]
}
