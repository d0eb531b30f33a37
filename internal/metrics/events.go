package metrics

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all crafting events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CraftCompleted,
		event.CraftAborted,
		event.RecipeUnlocked,
		event.NoticeRaised,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CraftCompleted:
		payload, err := event.DecodePayload[event.CraftCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		CraftsTotal.WithLabelValues(payload.PanelName, OutcomeCompleted).Inc()
		for _, c := range payload.Consumed {
			ItemsConsumed.WithLabelValues(c.Name).Add(float64(c.Quantity))
		}
		for _, p := range payload.Produced {
			ItemsProduced.WithLabelValues(p.Name).Add(float64(p.Quantity))
		}

	case event.CraftAborted:
		payload, err := event.DecodePayload[event.CraftAbortedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		CraftsTotal.WithLabelValues(payload.PanelID, OutcomeAborted).Inc()

	case event.RecipeUnlocked:
		RecipesUnlocked.Inc()

	case event.NoticeRaised:
		payload, err := event.DecodePayload[event.NoticeRaisedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		NoticesRaised.WithLabelValues(string(payload.Level)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordScriptError counts a failed user script at site
func RecordScriptError(site string) {
	ScriptErrors.WithLabelValues(site).Inc()
}

// RecordModifierRejection counts a rejected modifier selection
func RecordModifierRejection(reason string) {
	ModifierRejections.WithLabelValues(reason).Inc()
}
