package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// TaskService enforces task permissions before touching the repository:
// only admins create and delete; admins or the current assignee update.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, logger: logger}
}

// GetTasksForActor returns every task for admins and only the actor's own
// assigned tasks for colaboradores.
func (s *TaskService) GetTasksForActor(ctx context.Context, actor domain.Actor) ([]domain.TaskView, error) {
	if actor.IsAdmin() {
		return s.tasks.FindAll(ctx)
	}
	return s.tasks.FindByAssignee(ctx, actor.ID)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) GetTasksByProject(ctx context.Context, projectID string) ([]domain.TaskView, error) {
	return s.tasks.FindByProject(ctx, projectID)
}

func (s *TaskService) GetTasksByAssignee(ctx context.Context, userID string) ([]domain.TaskView, error) {
	return s.tasks.FindByAssignee(ctx, userID)
}

// CreateTask is admin-only and requires the referenced project to exist.
// No write happens when the project is missing.
func (s *TaskService) CreateTask(ctx context.Context, actor domain.Actor, input ports.CreateTaskInput) (*domain.Task, error) {
	if err := domain.Authorize(actor, domain.WriteRule{AdminOnly: true}); err != nil {
		return nil, err
	}
	if input.Title == "" || input.ProjectID == "" {
		return nil, fmt.Errorf("%w: title and project_id are required", domain.ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	project, err := s.projects.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		AssignedTo:  input.AssignedTo,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("project_id", input.ProjectID).Msg("task created")
	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, actor domain.Actor, id string, patch ports.TaskPatch) error {
	if !patch.HasFields() {
		return fmt.Errorf("%w: update contains no fields", domain.ErrValidation)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.ErrInvalidStatus
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}
	if err := domain.Authorize(actor, domain.WriteRule{GrantedTo: task.AssignedTo}); err != nil {
		return err
	}

	_, err = s.tasks.Update(ctx, id, patch)
	return err
}

func (s *TaskService) DeleteTask(ctx context.Context, actor domain.Actor, id string) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}
	if err := domain.Authorize(actor, domain.WriteRule{AdminOnly: true}); err != nil {
		return err
	}

	if _, err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("task_id", id).Str("actor_id", actor.ID).Msg("task deleted")
	return nil
}
