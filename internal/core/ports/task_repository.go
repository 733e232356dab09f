package ports

import (
	"context"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// TaskPatch carries the fields of a sparse task update. Nil fields are left
// unchanged. An AssignedTo pointing at an empty string clears the assignment.
type TaskPatch struct {
	Title       *string
	Description *string
	AssignedTo  *string
	Status      *domain.TaskStatus
}

func (p TaskPatch) HasFields() bool {
	return p.Title != nil || p.Description != nil || p.AssignedTo != nil || p.Status != nil
}

// TaskRepository persists tasks. Find methods return nil without error when
// no row matches. List methods return read views carrying the assignee and
// project display names via left joins; either name is nil when the related
// row is missing.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindAll returns tasks ordered newest created first.
	FindAll(ctx context.Context) ([]domain.TaskView, error)
	FindByProject(ctx context.Context, projectID string) ([]domain.TaskView, error)
	FindByAssignee(ctx context.Context, userID string) ([]domain.TaskView, error)
	Update(ctx context.Context, id string, patch TaskPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
