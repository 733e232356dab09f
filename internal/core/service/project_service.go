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

// ProjectService enforces project permissions before touching the
// repository: only admins create; admins or the owner update and delete.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, logger: logger}
}

func (s *ProjectService) GetAllProjects(ctx context.Context) ([]domain.ProjectView, error) {
	return s.projects.FindAll(ctx)
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

// CreateProject is admin-only. The new project's owner is the creating
// actor, which must still reference an existing user row.
func (s *ProjectService) CreateProject(ctx context.Context, actor domain.Actor, input ports.CreateProjectInput) (*domain.Project, error) {
	if err := domain.Authorize(actor, domain.WriteRule{AdminOnly: true}); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	owner, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     actor.ID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("owner_id", actor.ID).Msg("project created")
	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, actor domain.Actor, id string, patch ports.ProjectPatch) error {
	if !patch.HasFields() {
		return fmt.Errorf("%w: update contains no fields", domain.ErrValidation)
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return domain.ErrProjectNotFound
	}
	if err := domain.Authorize(actor, domain.WriteRule{GrantedTo: project.OwnerID}); err != nil {
		return err
	}

	_, err = s.projects.Update(ctx, id, patch)
	return err
}

// DeleteProject removes the project row only. Tasks referencing it are left
// in place and list with a null project display name afterwards.
func (s *ProjectService) DeleteProject(ctx context.Context, actor domain.Actor, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find project: %w", err)
	}
	if project == nil {
		return domain.ErrProjectNotFound
	}
	if err := domain.Authorize(actor, domain.WriteRule{GrantedTo: project.OwnerID}); err != nil {
		return err
	}

	if _, err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("project_id", id).Str("actor_id", actor.ID).Msg("project deleted")
	return nil
}
