package ports

import (
	"context"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// ProjectPatch carries the fields of a sparse project update. Nil fields are
// left unchanged. Ownership is not patchable.
type ProjectPatch struct {
	Name        *string
	Description *string
}

func (p ProjectPatch) HasFields() bool {
	return p.Name != nil || p.Description != nil
}

// ProjectRepository persists projects. Find methods return nil without error
// when no row matches. List methods return read views enriched with the
// owner's display name via a left join.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// FindAll returns projects ordered newest created first.
	FindAll(ctx context.Context) ([]domain.ProjectView, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.ProjectView, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
