package bootstrap

import (
	"log/slog"

	"github.com/osse101/CraftPanel_Go/internal/config"
	"github.com/osse101/CraftPanel_Go/internal/eventlog"
	"github.com/osse101/CraftPanel_Go/internal/scheduler"
	"github.com/osse101/CraftPanel_Go/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules the audit log
// retention cleanup on it.
func StartBackgroundJobs(cfg *config.Config, audit eventlog.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.AuditCleanupInterval, eventlog.NewCleanupJob(audit, cfg.AuditRetentionDays))

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", cfg.WorkerCount,
		"audit_cleanup_interval", cfg.AuditCleanupInterval,
		"audit_retention_days", cfg.AuditRetentionDays)
	return pool, sched
}
