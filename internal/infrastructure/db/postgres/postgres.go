// Package postgres provides the hosted-service Gateway implementation over
// a pgx connection pool, for multi-client deployments.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
	"github.com/RuanParreira/arquitetura-cebola/internal/infrastructure/db"
)

const uniqueViolationCode = "23505"

// Gateway executes statements against Postgres. Incoming statements use the
// shared ? placeholder style and are rebound to $n before execution.
type Gateway struct {
	pool *pgxpool.Pool
}

var _ ports.Gateway = (*Gateway)(nil)

// Connect parses the DSN, establishes the pool, verifies connectivity, and
// bootstraps the schema.
func Connect(ctx context.Context, url string) (*Gateway, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 25
	}
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	g := &Gateway{pool: pool}
	if err := g.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return g, nil
}

func (g *Gateway) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	tag, err := g.pool.Exec(ctx, rebind(stmt), args...)
	if err != nil {
		return 0, wrapErr(err)
	}
	return tag.RowsAffected(), nil
}

func (g *Gateway) QueryOne(ctx context.Context, stmt string, args ...any) (ports.Row, error) {
	rows, err := g.pool.Query(ctx, rebind(stmt), args...)
	if err != nil {
		return nil, wrapErr(err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return ports.Row(row), nil
}

func (g *Gateway) QueryMany(ctx context.Context, stmt string, args ...any) ([]ports.Row, error) {
	rows, err := g.pool.Query(ctx, rebind(stmt), args...)
	if err != nil {
		return nil, wrapErr(err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, wrapErr(err)
	}

	out := make([]ports.Row, len(maps))
	for i, m := range maps {
		out[i] = ports.Row(m)
	}
	return out, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.pool.Ping(ctx)
}

func (g *Gateway) Close() error {
	g.pool.Close()
	return nil
}

// rebind rewrites ? placeholders as $1..$n. Question marks inside quoted
// literals are left alone.
func rebind(stmt string) string {
	var b strings.Builder
	b.Grow(len(stmt) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(stmt); i++ {
		c := stmt[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func wrapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %v", db.ErrDuplicate, err)
	}
	return err
}
