package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CraftPanel_Go/internal/panel"
	"github.com/osse101/CraftPanel_Go/internal/scheduler"
	"github.com/osse101/CraftPanel_Go/internal/server"
	"github.com/osse101/CraftPanel_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Sessions  *panel.Manager
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Store     interface{ Close() }
}

// GracefulShutdown stops the application in dependency order: the HTTP
// server first so no new actions arrive, then open sessions, background
// jobs and finally the store. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Sessions != nil {
		keys := c.Sessions.Keys()
		for _, key := range keys {
			_ = c.Sessions.Close(ctx, key)
		}
		slog.Info(LogMsgSessionsClosed, "count", len(keys))
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Workers != nil {
		c.Workers.Stop()
	}
	if c.Store != nil {
		c.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
