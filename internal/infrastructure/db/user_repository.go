package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

const userColumns = "id, name, email, password, role, client_id, client_secret, created_at"

// UserRepository persists users. Passwords are write-only: they are bcrypt
// hashed here on create and on password-changing updates, and the hash never
// leaves the domain.User struct's unexported JSON surface.
type UserRepository struct {
	gw ports.Gateway
}

func NewUserRepository(gw ports.Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	_, err = r.gw.Exec(ctx,
		`INSERT INTO users (id, name, email, password, role, client_id, client_secret, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, string(hash), user.Role, user.ClientID, user.ClientSecret, user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	stored := *user
	stored.Password = string(hash)
	return &stored, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row, err := r.gw.QueryOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return scanUser(row), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := r.gw.QueryOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return scanUser(row), nil
}

func (r *UserRepository) FindByClientCredentials(ctx context.Context, clientID, clientSecret string) (*domain.User, error) {
	row, err := r.gw.QueryOne(ctx,
		"SELECT "+userColumns+" FROM users WHERE client_id = ? AND client_secret = ?",
		clientID, clientSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return scanUser(row), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.gw.QueryMany(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *scanUser(row))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch ports.UserPatch) (bool, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("hash password: %w", err)
		}
		sets = append(sets, "password = ?")
		args = append(args, string(hash))
	}
	if patch.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *patch.Role)
	}
	if len(sets) == 0 {
		return false, fmt.Errorf("%w: update contains no fields", domain.ErrValidation)
	}

	args = append(args, id)
	affected, err := r.gw.Exec(ctx, "UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return false, domain.ErrEmailTaken
		}
		return false, fmt.Errorf("update user: %w", err)
	}
	return affected == 1, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	affected, err := r.gw.Exec(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return affected == 1, nil
}

func scanUser(row ports.Row) *domain.User {
	if row == nil {
		return nil
	}
	return &domain.User{
		ID:           rowString(row, "id"),
		Name:         rowString(row, "name"),
		Email:        rowString(row, "email"),
		Password:     rowString(row, "password"),
		Role:         rowString(row, "role"),
		ClientID:     rowString(row, "client_id"),
		ClientSecret: rowString(row, "client_secret"),
		CreatedAt:    rowTime(row, "created_at"),
	}
}
