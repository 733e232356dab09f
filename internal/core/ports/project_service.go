package ports

import (
	"context"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// CreateProjectInput carries the data for a new project. The owner is always
// the creating actor, never a client-supplied id.
type CreateProjectInput struct {
	Name        string
	Description string
}

// ProjectService enforces the project permission rules before delegating to
// the repository: only admins create; admins or the owner update and delete.
type ProjectService interface {
	GetAllProjects(ctx context.Context) ([]domain.ProjectView, error)
	GetProjectByID(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, actor domain.Actor, input CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, actor domain.Actor, id string, patch ProjectPatch) error
	DeleteProject(ctx context.Context, actor domain.Actor, id string) error
}
