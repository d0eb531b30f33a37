package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/CraftPanel_Go/internal/config"
	"github.com/osse101/CraftPanel_Go/internal/database"
	"github.com/osse101/CraftPanel_Go/internal/database/memory"
	"github.com/osse101/CraftPanel_Go/internal/database/postgres"
	"github.com/osse101/CraftPanel_Go/internal/eventlog"
	"github.com/osse101/CraftPanel_Go/internal/repository"
)

// Backend is a store serving crafting, ledger and audit persistence
type Backend interface {
	repository.Store
	eventlog.Repository
}

// Stores holds the selected backend and, for Postgres, its pool for the
// readiness check.
type Stores struct {
	Backend Backend
	Pool    database.Pool
}

// InitializeStore opens the backend named by cfg.StoreBackend. The memory
// backend is filled from cfg.SeedFile. The Postgres backend is migrated and
// the seed, when given, is upserted.
func InitializeStore(ctx context.Context, cfg *config.Config) (*Stores, error) {
	var seed *database.Seed
	if cfg.SeedFile != "" {
		s, err := database.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSeed, err)
		}
		seed = s
		slog.Info(LogMsgSeedLoaded,
			"path", cfg.SeedFile,
			"items", len(s.Items),
			"users", len(s.Users),
			"roll_tables", len(s.RollTables))
	}

	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		slog.Info(LogMsgStoreInitialized, "backend", cfg.StoreBackend)
		return &Stores{Backend: memory.NewStore(seed, cfg.QuantityPath)}, nil

	case config.StoreBackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns,
			config.DBMaxConnIdleMinutes*time.Minute, config.DBMaxConnLifeMinutes*time.Minute)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}

		if _, err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}

		store := postgres.NewStore(pool, cfg.QuantityPath)
		if seed != nil {
			if err := store.ApplySeed(ctx, seed); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedApplySeed, err)
			}
		}
		slog.Info(LogMsgStoreInitialized, "backend", cfg.StoreBackend)
		return &Stores{Backend: store, Pool: pool}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StoreBackend)
}
