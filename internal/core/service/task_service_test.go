package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

func newTaskFixture(t *testing.T) (*TaskService, *stubTaskRepo, *stubProjectRepo, domain.Actor, domain.Actor) {
	t.Helper()
	tasks := newStubTaskRepo()
	projects := newStubProjectRepo()
	svc := NewTaskService(tasks, projects, zerolog.Nop())
	admin := domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	colab := domain.Actor{ID: "colab-1", Role: domain.RoleColaborador}
	return svc, tasks, projects, admin, colab
}

func seedProject(t *testing.T, projects *stubProjectRepo, id, ownerID string) {
	t.Helper()
	_, err := projects.Create(context.Background(), &domain.Project{
		ID: id, Name: "Project " + id, OwnerID: ownerID, CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
}

func TestTaskService_Create_AdminOnly(t *testing.T) {
	svc, tasks, projects, admin, colab := newTaskFixture(t)
	ctx := context.Background()
	seedProject(t, projects, "p1", admin.ID)

	input := ports.CreateTaskInput{Title: "T", ProjectID: "p1"}
	if _, err := svc.CreateTask(ctx, colab, input); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(tasks.tasks) != 0 {
		t.Fatalf("repository state changed on rejected create")
	}

	created, err := svc.CreateTask(ctx, admin, input)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status should default to pending, got %s", created.Status)
	}
}

func TestTaskService_Create_MissingProject(t *testing.T) {
	svc, tasks, _, admin, _ := newTaskFixture(t)

	_, err := svc.CreateTask(context.Background(), admin, ports.CreateTaskInput{Title: "T", ProjectID: "ghost"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if len(tasks.tasks) != 0 {
		t.Fatalf("no write should happen when the project is missing")
	}
}

func TestTaskService_Create_InvalidStatus(t *testing.T) {
	svc, _, projects, admin, _ := newTaskFixture(t)
	seedProject(t, projects, "p1", admin.ID)

	_, err := svc.CreateTask(context.Background(), admin, ports.CreateTaskInput{
		Title: "T", ProjectID: "p1", Status: domain.TaskStatus("archived"),
	})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

// Admin creates T in P assigned to the colaborador with status pending; the
// colaborador completes it; the title survives the sparse update.
func TestTaskService_AssigneeUpdateScenario(t *testing.T) {
	svc, _, projects, admin, colab := newTaskFixture(t)
	ctx := context.Background()
	seedProject(t, projects, "p1", admin.ID)

	created, err := svc.CreateTask(ctx, admin, ports.CreateTaskInput{
		Title: "Configurar ambiente", ProjectID: "p1", AssignedTo: colab.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done := domain.StatusCompleted
	if err := svc.UpdateTask(ctx, colab, created.ID, ports.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("assignee update: %v", err)
	}

	got, err := svc.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusCompleted {
		t.Fatalf("status not updated: %s", got.Status)
	}
	if got.Title != "Configurar ambiente" {
		t.Fatalf("title should be untouched, got %q", got.Title)
	}
}

func TestTaskService_Update_NonAssigneeRejected(t *testing.T) {
	svc, _, projects, admin, colab := newTaskFixture(t)
	ctx := context.Background()
	seedProject(t, projects, "p1", admin.ID)

	created, err := svc.CreateTask(ctx, admin, ports.CreateTaskInput{
		Title: "T", ProjectID: "p1", AssignedTo: "someone-else",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done := domain.StatusCompleted
	if err := svc.UpdateTask(ctx, colab, created.ID, ports.TaskPatch{Status: &done}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := svc.UpdateTask(ctx, admin, created.ID, ports.TaskPatch{Status: &done}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestTaskService_Update_NotFoundBeforeAuthz(t *testing.T) {
	svc, _, _, _, colab := newTaskFixture(t)

	done := domain.StatusCompleted
	err := svc.UpdateTask(context.Background(), colab, "missing", ports.TaskPatch{Status: &done})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Update_EmptyPatch(t *testing.T) {
	svc, _, projects, admin, _ := newTaskFixture(t)
	ctx := context.Background()
	seedProject(t, projects, "p1", admin.ID)
	created, _ := svc.CreateTask(ctx, admin, ports.CreateTaskInput{Title: "T", ProjectID: "p1"})

	if err := svc.UpdateTask(ctx, admin, created.ID, ports.TaskPatch{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTaskService_Delete_AdminOnly(t *testing.T) {
	svc, _, projects, admin, colab := newTaskFixture(t)
	ctx := context.Background()
	seedProject(t, projects, "p1", admin.ID)

	created, err := svc.CreateTask(ctx, admin, ports.CreateTaskInput{
		Title: "T", ProjectID: "p1", AssignedTo: colab.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Even the assignee may not delete.
	if err := svc.DeleteTask(ctx, colab, created.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := svc.DeleteTask(ctx, admin, created.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.GetTaskByID(ctx, created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}

func TestTaskService_GetTasksForActor(t *testing.T) {
	svc, _, projects, admin, colab := newTaskFixture(t)
	ctx := context.Background()
	seedProject(t, projects, "p1", admin.ID)

	if _, err := svc.CreateTask(ctx, admin, ports.CreateTaskInput{Title: "mine", ProjectID: "p1", AssignedTo: colab.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateTask(ctx, admin, ports.CreateTaskInput{Title: "other", ProjectID: "p1", AssignedTo: admin.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.GetTasksForActor(ctx, admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see all tasks, got %d", len(all))
	}

	own, err := svc.GetTasksForActor(ctx, colab)
	if err != nil {
		t.Fatalf("colaborador list: %v", err)
	}
	if len(own) != 1 || own[0].Title != "mine" {
		t.Fatalf("colaborador should see only assigned tasks, got %+v", own)
	}
}
