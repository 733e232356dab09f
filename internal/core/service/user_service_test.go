package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

func TestUserService_Create_AssignsIdentityAndCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "123456", Role: domain.RoleColaborador,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("identity not assigned: %+v", created)
	}
	if created.ClientID == "" || created.ClientSecret == "" {
		t.Fatalf("client credentials should be generated when absent")
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, ports.CreateUserInput{Email: "a@b.c", Password: "x", Role: domain.RoleAdmin}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("missing name: expected ErrValidation, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, ports.CreateUserInput{Name: "A", Email: "a@b.c", Password: "x", Role: "root"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad role: expected ErrValidation, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	input := ports.CreateUserInput{Name: "A", Email: "a@b.c", Password: "x", Role: domain.RoleAdmin}
	if _, err := svc.CreateUser(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateUser(ctx, input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_GetUpdateDelete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	ctx := context.Background()

	if _, err := svc.GetUserByID(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("get: expected ErrUserNotFound, got %v", err)
	}
	name := "x"
	if err := svc.UpdateUser(ctx, "ghost", ports.UserPatch{Name: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("update: expected ErrUserNotFound, got %v", err)
	}
	if err := svc.DeleteUser(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("delete: expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_EmptyPatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, ports.CreateUserInput{
		Name: "A", Email: "a@b.c", Password: "x", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.UpdateUser(ctx, created.ID, ports.UserPatch{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
