package ports

import "context"

// Row is a single result row keyed by column name.
type Row map[string]any

// Gateway executes parameterized SQL against one of the interchangeable
// relational backends (embedded SQLite file or hosted Postgres). Statements
// use ? placeholders; backends with numbered parameters rebind internally.
// Values are never interpolated into statement text.
type Gateway interface {
	// Exec runs a write statement and returns the number of affected rows.
	Exec(ctx context.Context, stmt string, args ...any) (int64, error)
	// QueryOne returns the first matching row, or nil when there is none.
	QueryOne(ctx context.Context, stmt string, args ...any) (Row, error)
	// QueryMany returns all matching rows in statement order.
	QueryMany(ctx context.Context, stmt string, args ...any) ([]Row, error)
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the shared connection. Called once on shutdown.
	Close() error
}
