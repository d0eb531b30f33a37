package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/eventlog"
	"github.com/osse101/CraftPanel_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and registers its subscribers:
// the metrics collector and the audit logger writing to auditRepo.
func InitializeEventSystem(auditRepo eventlog.Repository) (event.Bus, eventlog.Service, error) {
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}

	audit := eventlog.NewService(auditRepo)
	if err := audit.Subscribe(bus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedSubscribeAudit, err)
	}

	slog.Info(LogMsgEventSystemInitialized, "audited_types", len(eventlog.AuditedTypes))
	return bus, audit, nil
}
