package crafting

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/logger"
)

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *Service) publishNotices(ctx context.Context, panelID, userID string, notices []domain.Notice) {
	for _, n := range notices {
		s.publish(ctx, event.NewNoticeRaisedEvent(panelID, userID, n))
	}
}

func (s *Service) publishCompleted(ctx context.Context, sess *Session, out *Outcome) {
	payload := event.CraftCompletedPayloadV1{
		PanelID:   sess.panel.ID,
		PanelName: sess.panel.Name,
		UserID:    sess.user.ID,
		Modifiers: out.Modifiers,
		Consumed:  materialLines(out.Consumed),
		Kept:      materialLines(out.Kept),
		Produced:  productLines(out.Produced),
	}
	if sess.actor != nil {
		payload.ActorID = sess.actor.ID
	}
	if out.Recipe != nil {
		payload.RecipeID = out.Recipe.ID
	}
	s.publish(ctx, event.NewCraftCompletedEvent(payload))
}

func materialLines(materials []domain.Material) []event.ItemQuantityV1 {
	out := make([]event.ItemQuantityV1, 0, len(materials))
	for _, m := range materials {
		out = append(out, event.ItemQuantityV1{UUID: m.Item.UUID, Name: m.Item.Name, Quantity: m.Quantity})
	}
	return out
}

func productLines(products []domain.Product) []event.ItemQuantityV1 {
	out := make([]event.ItemQuantityV1, 0, len(products))
	for _, p := range products {
		out = append(out, event.ItemQuantityV1{UUID: p.Item.UUID, Name: p.Item.Name, Quantity: p.Quantity})
	}
	return out
}
