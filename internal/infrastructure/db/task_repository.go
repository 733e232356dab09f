package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// TaskRepository persists tasks. List paths left-join both the assignee and
// the project: an unassigned task or one orphaned by a project delete lists
// with a nil display name rather than failing.
type TaskRepository struct {
	gw ports.Gateway
}

func NewTaskRepository(gw ports.Gateway) *TaskRepository {
	return &TaskRepository{gw: gw}
}

const taskViewQuery = `
	SELECT t.id, t.title, t.description, t.project_id, t.assigned_to, t.status, t.created_at,
	       u.name AS assigned_name, p.name AS project_name
	FROM tasks t
	LEFT JOIN users u ON t.assigned_to = u.id
	LEFT JOIN projects p ON t.project_id = p.id`

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	_, err := r.gw.Exec(ctx,
		`INSERT INTO tasks (id, title, description, project_id, assigned_to, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, nullable(task.Description), task.ProjectID,
		nullable(task.AssignedTo), string(task.Status), task.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	stored := *task
	return &stored, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	row, err := r.gw.QueryOne(ctx,
		"SELECT id, title, description, project_id, assigned_to, status, created_at FROM tasks WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	t := scanTask(row)
	return &t, nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]domain.TaskView, error) {
	rows, err := r.gw.QueryMany(ctx, taskViewQuery+" ORDER BY t.created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return scanTaskViews(rows), nil
}

func (r *TaskRepository) FindByProject(ctx context.Context, projectID string) ([]domain.TaskView, error) {
	rows, err := r.gw.QueryMany(ctx,
		taskViewQuery+" WHERE t.project_id = ? ORDER BY t.created_at DESC", projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by project: %w", err)
	}
	return scanTaskViews(rows), nil
}

func (r *TaskRepository) FindByAssignee(ctx context.Context, userID string) ([]domain.TaskView, error) {
	rows, err := r.gw.QueryMany(ctx,
		taskViewQuery+" WHERE t.assigned_to = ? ORDER BY t.created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by assignee: %w", err)
	}
	return scanTaskViews(rows), nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch ports.TaskPatch) (bool, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullable(*patch.Description))
	}
	if patch.AssignedTo != nil {
		sets = append(sets, "assigned_to = ?")
		args = append(args, nullable(*patch.AssignedTo))
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if len(sets) == 0 {
		return false, fmt.Errorf("%w: update contains no fields", domain.ErrValidation)
	}

	args = append(args, id)
	affected, err := r.gw.Exec(ctx, "UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return false, fmt.Errorf("update task: %w", err)
	}
	return affected == 1, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	affected, err := r.gw.Exec(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return affected == 1, nil
}

func scanTask(row ports.Row) domain.Task {
	return domain.Task{
		ID:          rowString(row, "id"),
		Title:       rowString(row, "title"),
		Description: rowString(row, "description"),
		ProjectID:   rowString(row, "project_id"),
		AssignedTo:  rowString(row, "assigned_to"),
		Status:      domain.TaskStatus(rowString(row, "status")),
		CreatedAt:   rowTime(row, "created_at"),
	}
}

func scanTaskViews(rows []ports.Row) []domain.TaskView {
	views := make([]domain.TaskView, 0, len(rows))
	for _, row := range rows {
		views = append(views, domain.TaskView{
			Task:         scanTask(row),
			AssigneeName: rowNullString(row, "assigned_name"),
			ProjectName:  rowNullString(row, "project_name"),
		})
	}
	return views
}
