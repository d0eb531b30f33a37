package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CraftPanel_Go/internal/bootstrap"
	"github.com/osse101/CraftPanel_Go/internal/config"
	"github.com/osse101/CraftPanel_Go/internal/crafting"
	"github.com/osse101/CraftPanel_Go/internal/ledger"
	"github.com/osse101/CraftPanel_Go/internal/panel"
	"github.com/osse101/CraftPanel_Go/internal/server"
	"github.com/osse101/CraftPanel_Go/internal/utils"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)
	for _, w := range cfg.ValidateEnvWithWarnings() {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx := context.Background()

	stores, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	bus, audit, err := bootstrap.InitializeEventSystem(stores.Backend)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	catalog, err := bootstrap.LoadCatalog(ctx, cfg.PanelsDir)
	if err != nil {
		slog.Error("Failed to load panels", "error", err)
		os.Exit(1)
	}

	rnd, err := utils.NewRandomSource(cfg.RandomSeed)
	if err != nil {
		slog.Error("Failed to seed randomness", "error", err)
		os.Exit(1)
	}

	scripts, _ := bootstrap.NewScriptProvider()
	sessions := panel.NewManager()
	craftingService := crafting.NewService(crafting.Deps{
		Store:        stores.Backend,
		Ledger:       ledger.NewService(stores.Backend, bus, cfg.UnlockCacheSize, cfg.UnlockCacheTTL),
		Catalog:      catalog,
		Manager:      sessions,
		Bus:          bus,
		Scripts:      scripts,
		QuantityPath: cfg.QuantityPath,
		Rand:         rnd,
	})

	workers, sched := bootstrap.StartBackgroundJobs(cfg, audit)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		DBPool:         stores.Pool,
		PanelCount:     catalog.Len,
		Audit:          audit,
	}, craftingService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Sessions:  sessions,
		Scheduler: sched,
		Workers:   workers,
		Store:     stores.Backend,
	})
}
