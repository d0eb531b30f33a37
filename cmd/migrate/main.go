// Command migrate applies the embedded schema migrations to the configured
// Postgres database and optionally loads a seed file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/CraftPanel_Go/internal/bootstrap"
	"github.com/osse101/CraftPanel_Go/internal/config"
	"github.com/osse101/CraftPanel_Go/internal/database"
	"github.com/osse101/CraftPanel_Go/internal/database/postgres"
)

func main() {
	seedPath := flag.String("seed", "", "seed file (JSON or YAML) to upsert after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns,
		config.DBMaxConnIdleMinutes*time.Minute, config.DBMaxConnLifeMinutes*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if _, err := database.Migrate(ctx, pool); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	if *seedPath == "" {
		return
	}
	seed, err := database.LoadSeed(*seedPath)
	if err != nil {
		slog.Error("Failed to load seed", "path", *seedPath, "error", err)
		os.Exit(1)
	}
	if err := postgres.NewStore(pool, cfg.QuantityPath).ApplySeed(ctx, seed); err != nil {
		slog.Error("Failed to apply seed", "error", err)
		os.Exit(1)
	}
	slog.Info("Seed applied", "path", *seedPath, "items", len(seed.Items))
}
