package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// ProjectRepository persists projects. List paths left-join the owner so the
// view carries a display name even when the owner row has been deleted.
type ProjectRepository struct {
	gw ports.Gateway
}

func NewProjectRepository(gw ports.Gateway) *ProjectRepository {
	return &ProjectRepository{gw: gw}
}

const projectViewQuery = `
	SELECT p.id, p.name, p.description, p.owner_id, p.created_at, u.name AS owner_name
	FROM projects p
	LEFT JOIN users u ON p.owner_id = u.id`

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	_, err := r.gw.Exec(ctx,
		`INSERT INTO projects (id, name, description, owner_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		project.ID, project.Name, nullable(project.Description), project.OwnerID, project.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	stored := *project
	return &stored, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	row, err := r.gw.QueryOne(ctx,
		"SELECT id, name, description, owner_id, created_at FROM projects WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	p := scanProject(row)
	return &p, nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.ProjectView, error) {
	rows, err := r.gw.QueryMany(ctx, projectViewQuery+" ORDER BY p.created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return scanProjectViews(rows), nil
}

func (r *ProjectRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.ProjectView, error) {
	rows, err := r.gw.QueryMany(ctx,
		projectViewQuery+" WHERE p.owner_id = ? ORDER BY p.created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}
	return scanProjectViews(rows), nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, patch ports.ProjectPatch) (bool, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullable(*patch.Description))
	}
	if len(sets) == 0 {
		return false, fmt.Errorf("%w: update contains no fields", domain.ErrValidation)
	}

	args = append(args, id)
	affected, err := r.gw.Exec(ctx, "UPDATE projects SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return false, fmt.Errorf("update project: %w", err)
	}
	return affected == 1, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	affected, err := r.gw.Exec(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return affected == 1, nil
}

func scanProject(row ports.Row) domain.Project {
	return domain.Project{
		ID:          rowString(row, "id"),
		Name:        rowString(row, "name"),
		Description: rowString(row, "description"),
		OwnerID:     rowString(row, "owner_id"),
		CreatedAt:   rowTime(row, "created_at"),
	}
}

func scanProjectViews(rows []ports.Row) []domain.ProjectView {
	views := make([]domain.ProjectView, 0, len(rows))
	for _, row := range rows {
		views = append(views, domain.ProjectView{
			Project:   scanProject(row),
			OwnerName: rowNullString(row, "owner_name"),
		})
	}
	return views
}
