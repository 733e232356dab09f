package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RuanParreira/arquitetura-cebola/internal/api"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
	"github.com/RuanParreira/arquitetura-cebola/internal/infrastructure/db"
	"github.com/RuanParreira/arquitetura-cebola/internal/infrastructure/db/postgres"
	"github.com/RuanParreira/arquitetura-cebola/internal/infrastructure/db/sqlite"
	"github.com/RuanParreira/arquitetura-cebola/internal/pkg/config"
	"github.com/RuanParreira/arquitetura-cebola/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := connectGateway(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to connect storage")
	}
	defer func() {
		if err := gw.Close(); err != nil {
			log.Error().Err(err).Msg("closing storage gateway")
		}
	}()

	if cfg.SeedDemoData {
		if err := db.SeedDemoData(ctx, gw); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("demo data present")
	}

	e := api.NewRouter(gw, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.DB.Driver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		os.Exit(1)
	}
}

func connectGateway(ctx context.Context, cfg *config.Config) (ports.Gateway, error) {
	if cfg.DB.Driver == config.DriverPostgres {
		return postgres.Connect(ctx, cfg.DB.URL)
	}
	return sqlite.Connect(ctx, cfg.DB.SQLitePath)
}
