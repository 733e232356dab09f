package postgres

import "context"

// Referential integrity between the three tables is enforced by the use
// cases, not the store: a project delete deliberately leaves its tasks in
// place (they list with a null project name afterwards).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('admin', 'colaborador')),
		client_id TEXT UNIQUE NOT NULL,
		client_secret TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		owner_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		project_id TEXT NOT NULL,
		assigned_to TEXT,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'in_progress', 'completed')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks (assigned_to)`,
}

func (g *Gateway) ensureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := g.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
