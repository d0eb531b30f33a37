package crafting

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/naming"
)

// StoreRecipe saves the current slot contents and manual modifier
// selection under name
func (s *Session) StoreRecipe(ctx context.Context, name string) (*domain.StoredRecipe, error) {
	logger.FromContext(ctx).Info(LogMsgStoreCalled, "panel", s.panel.ID, "user_id", s.user.ID, "name", name)

	if s.svc.ledger == nil {
		return nil, fmt.Errorf("no ledger configured | %w", domain.ErrInvalidInput)
	}

	rec := &domain.StoredRecipe{
		UserID:    s.user.ID,
		PanelID:   s.panel.ID,
		Name:      name,
		Modifiers: s.mods.ManualIDs(),
	}
	for i, c := range s.contents {
		if c.Item == nil {
			continue
		}
		rec.Slots = append(rec.Slots, domain.StoredSlot{
			SlotIndex: i,
			ItemUUID:  c.Item.UUID,
			ItemName:  c.Item.Name,
			Quantity:  c.Quantity,
		})
	}

	if err := s.svc.ledger.StoreRecipe(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RecallRecipe replaces the slot contents with a stored snapshot. Items
// are found again by identity, then by name in the actor's inventory.
// When one is gone the session is left unchanged and the error names the
// closest item the actor still has.
func (s *Session) RecallRecipe(ctx context.Context, storedID string) error {
	ctx, sink, done := s.track(ctx)
	defer done()

	log := logger.FromContext(ctx)
	log.Info(LogMsgRecallCalled, "panel", s.panel.ID, "user_id", s.user.ID, "stored_recipe", storedID)

	if s.svc.ledger == nil {
		return fmt.Errorf("stored recipe '%s' | %w", storedID, domain.ErrStoredRecipeNotFound)
	}
	rec, err := s.svc.ledger.GetStoredRecipe(ctx, s.user.ID, storedID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadStored, err)
	}
	if rec.PanelID != s.panel.ID {
		return fmt.Errorf("stored recipe '%s' belongs to panel '%s' | %w", storedID, rec.PanelID, domain.ErrStoredRecipeNotFound)
	}

	var inventory []domain.Item
	if s.actor != nil {
		if inventory, err = s.svc.store.ListItems(ctx, s.actor.ID); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetItem, err)
		}
	}

	resolved := make([]string, len(s.panel.Slots))
	for _, ss := range rec.Slots {
		if ss.SlotIndex < 0 || ss.SlotIndex >= len(s.panel.Slots) {
			return fmt.Errorf("%s: %d | %w", ErrMsgStoredSlotGone, ss.SlotIndex, domain.ErrMaterialGone)
		}
		uuid, ok := s.findStored(ctx, ss, inventory)
		if !ok {
			hint := naming.Hint(inventoryNames(inventory), ss.ItemName)
			msg := fmt.Sprintf(MsgMaterialMissing, ss.ItemName)
			if hint != "" {
				msg += " " + strings.ToUpper(hint[:1]) + hint[1:]
			}
			sink.warn(msg)
			if hint != "" {
				return fmt.Errorf("'%s', %s | %w", ss.ItemName, hint, domain.ErrMaterialGone)
			}
			return fmt.Errorf("'%s' | %w", ss.ItemName, domain.ErrMaterialGone)
		}
		resolved[ss.SlotIndex] = uuid
	}

	prev := s.contents
	manual := s.mods.ManualIDs()
	s.clear()
	for _, ss := range rec.Slots {
		if err := s.Place(ctx, ss.SlotIndex, resolved[ss.SlotIndex], ss.Quantity); err != nil {
			s.restore(ctx, prev, manual)
			return err
		}
	}

	for id, r := range s.mods.Select(ctx, rec.Modifiers) {
		log.Info(LogMsgSelectionDropped, "modifier", id, "reason", r)
		sink.warn(r.Message())
	}
	return nil
}

func (s *Session) findStored(ctx context.Context, ss domain.StoredSlot, inventory []domain.Item) (string, bool) {
	if s.actor == nil {
		item, err := s.svc.store.GetItem(ctx, ss.ItemUUID)
		if err != nil {
			return "", false
		}
		return item.UUID, true
	}
	for _, it := range inventory {
		if it.UUID == ss.ItemUUID {
			return it.UUID, true
		}
	}
	for _, it := range inventory {
		if it.Name == ss.ItemName {
			return it.UUID, true
		}
	}
	return "", false
}

func inventoryNames(items []domain.Item) naming.Resolver {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return naming.NewResolver(names...)
}

// restore puts back slot contents and modifier choices after a failed recall.
func (s *Session) restore(ctx context.Context, contents []domain.SlotContent, manual []string) {
	s.contents = contents
	if err := s.Recompute(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecomputeFailed, "panel", s.panel.ID, "error", err)
		return
	}
	s.mods.Select(ctx, manual)
}
