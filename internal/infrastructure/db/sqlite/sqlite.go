// Package sqlite provides the embedded file-backed Gateway implementation
// for local and offline deployments.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
	"github.com/RuanParreira/arquitetura-cebola/internal/infrastructure/db"
)

// timeLayout is fixed-width so text ordering of created_at matches
// chronological ordering.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Gateway executes statements against a SQLite file through database/sql.
type Gateway struct {
	sqlDB *sql.DB
}

var _ ports.Gateway = (*Gateway)(nil)

// Connect opens (creating if needed) the database file, applies the session
// pragmas, verifies connectivity, and bootstraps the schema. Use ":memory:"
// for an ephemeral database in tests.
func Connect(ctx context.Context, path string) (*Gateway, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	// SQLite benefits from a single writer connection; this also keeps the
	// :memory: database from vanishing between pooled connections.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	g := &Gateway{sqlDB: sqlDB}
	if err := g.ensureSchema(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return g, nil
}

func (g *Gateway) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	res, err := g.sqlDB.ExecContext(ctx, stmt, convertArgs(args)...)
	if err != nil {
		return 0, wrapErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (g *Gateway) QueryOne(ctx context.Context, stmt string, args ...any) (ports.Row, error) {
	rows, err := g.queryRows(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (g *Gateway) QueryMany(ctx context.Context, stmt string, args ...any) ([]ports.Row, error) {
	return g.queryRows(ctx, stmt, args...)
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.sqlDB.PingContext(ctx)
}

func (g *Gateway) Close() error {
	return g.sqlDB.Close()
}

func (g *Gateway) queryRows(ctx context.Context, stmt string, args ...any) ([]ports.Row, error) {
	rows, err := g.sqlDB.QueryContext(ctx, stmt, convertArgs(args)...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []ports.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(ports.Row, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// convertArgs renders time.Time values with the fixed-width layout the
// schema's text ordering relies on.
func convertArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if t, ok := a.(time.Time); ok {
			out[i] = t.UTC().Format(timeLayout)
			continue
		}
		out[i] = a
	}
	return out
}

func wrapErr(err error) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", db.ErrDuplicate, err)
	}
	return err
}
