package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

// SeedDemoData inserts a known admin, a collaborator, a sample project, and a
// few tasks so a fresh deployment can be exercised immediately. It is
// idempotent: if the demo admin is already present it does nothing.
func SeedDemoData(ctx context.Context, gw ports.Gateway) error {
	existing, err := gw.QueryOne(ctx, "SELECT id FROM users WHERE client_id = ?", "admin_client")
	if err != nil {
		return fmt.Errorf("check demo data: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	adminID := uuid.NewString()
	colaboradorID := uuid.NewString()
	projectID := uuid.NewString()
	now := time.Now().UTC()

	users := []struct {
		id, name, email, role, clientID, clientSecret string
	}{
		{adminID, "Admin User", "admin@example.com", domain.RoleAdmin, "admin_client", "admin_secret_123"},
		{colaboradorID, "João Silva", "joao@example.com", domain.RoleColaborador, "colaborador_client", "colaborador_secret_123"},
	}
	for i, u := range users {
		_, err := gw.Exec(ctx,
			`INSERT INTO users (id, name, email, password, role, client_id, client_secret, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			u.id, u.name, u.email, string(hashed), u.role, u.clientID, u.clientSecret,
			now.Add(time.Duration(i)*time.Millisecond),
		)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.clientID, err)
		}
	}

	_, err = gw.Exec(ctx,
		"INSERT INTO projects (id, name, description, owner_id, created_at) VALUES (?, ?, ?, ?, ?)",
		projectID, "Sistema de Gestão", "Projeto piloto para gerenciamento de tarefas", adminID, now,
	)
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	tasks := []struct {
		title, description, assignedTo string
		status                         domain.TaskStatus
	}{
		{"Configurar ambiente de desenvolvimento", "Instalar e configurar todas as dependências necessárias", colaboradorID, domain.StatusCompleted},
		{"Implementar autenticação JWT", "Criar sistema de autenticação usando JWT", adminID, domain.StatusInProgress},
		{"Desenvolver interface do usuário", "Criar telas para login e dashboard", colaboradorID, domain.StatusPending},
	}
	for i, t := range tasks {
		_, err := gw.Exec(ctx,
			`INSERT INTO tasks (id, title, description, project_id, assigned_to, status, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), t.title, t.description, projectID, t.assignedTo, string(t.status),
			now.Add(time.Duration(i)*time.Millisecond),
		)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", t.title, err)
		}
	}
	return nil
}
