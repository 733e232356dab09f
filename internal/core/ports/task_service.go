package ports

import (
	"context"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
)

// CreateTaskInput carries the data for a new task. Status defaults to
// pending when empty. AssignedTo may be empty for an unassigned task.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   string
	AssignedTo  string
	Status      domain.TaskStatus
}

// TaskService enforces the task permission rules before delegating to the
// repository: only admins create and delete; admins or the current assignee
// update.
type TaskService interface {
	// GetTasksForActor returns every task for admins and only the actor's
	// assigned tasks for colaboradores.
	GetTasksForActor(ctx context.Context, actor domain.Actor) ([]domain.TaskView, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)
	GetTasksByProject(ctx context.Context, projectID string) ([]domain.TaskView, error)
	GetTasksByAssignee(ctx context.Context, userID string) ([]domain.TaskView, error)
	CreateTask(ctx context.Context, actor domain.Actor, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, actor domain.Actor, id string, patch TaskPatch) error
	DeleteTask(ctx context.Context, actor domain.Actor, id string) error
}
