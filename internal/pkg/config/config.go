package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Driver names accepted in DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port      string `env:"PORT,      default=3001"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL bounds the lifetime of issued session tokens.
	TokenTTL time.Duration `env:"JWT_EXPIRES_IN, default=24h"`

	// SeedDemoData inserts the demo accounts and sample project on startup.
	SeedDemoData bool `env:"SEED_DEMO_DATA, default=false"`

	DB DBConfig
}

type DBConfig struct {
	// Driver selects the storage backend: sqlite (embedded) or postgres.
	Driver string `env:"DB_DRIVER, default=sqlite"`

	// SQLitePath is the database file location for the sqlite driver.
	SQLitePath string `env:"SQLITE_PATH, default=data/projects.db"`

	// URL is the connection string for the postgres driver.
	URL string `env:"DATABASE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate rejects combinations the process cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	switch c.DB.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DB.Driver)
	}
	return nil
}
