package ports

import (
	"context"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// UserPatch carries the fields of a sparse user update. Nil fields are left
// unchanged. Password is plaintext here; the repository hashes it before
// writing.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// HasFields reports whether the patch would write at least one column.
func (p UserPatch) HasFields() bool {
	return p.Name != nil || p.Email != nil || p.Password != nil || p.Role != nil
}

// UserRepository persists users. Find methods return nil without error when
// no row matches; callers translate that into a not-found failure.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByClientCredentials(ctx context.Context, clientID, clientSecret string) (*domain.User, error)
	// FindAll returns users ordered newest created first.
	FindAll(ctx context.Context) ([]domain.User, error)
	// Update applies a sparse patch and reports whether a row was written.
	Update(ctx context.Context, id string, patch UserPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
