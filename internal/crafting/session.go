package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/element"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/metrics"
	"github.com/osse101/CraftPanel_Go/internal/modifier"
	"github.com/osse101/CraftPanel_Go/internal/panel"
	"github.com/osse101/CraftPanel_Go/internal/recipe"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

// Session is one user's working state on one panel: what sits in each
// slot, the aggregates derived from it and the modifier selection. A
// session is not safe for concurrent use; Service serializes access.
type Session struct {
	svc   *Service
	panel *domain.Panel
	user  domain.User
	actor *domain.Actor // nil for communal crafting

	contents []domain.SlotContent // indexed like panel.Slots
	agg      element.Result
	unlocked map[string]bool
	usable   []*domain.Recipe
	visible  []*domain.Recipe
	mods     *modifier.Engine
	notices  []domain.Notice
}

// NewSession creates an empty session. Call Recompute before use.
func NewSession(svc *Service, p *domain.Panel, user domain.User, actor *domain.Actor) *Session {
	return &Session{
		svc:      svc,
		panel:    p,
		user:     user,
		actor:    actor,
		contents: make([]domain.SlotContent, len(p.Slots)),
		unlocked: make(map[string]bool),
		mods:     modifier.NewEngine(p, svc.invoker),
	}
}

// Key implements panel.Session.
func (s *Session) Key() panel.Key {
	return panel.KeyFor(s.panel, s.user.ID)
}

// Close implements panel.Session.
func (s *Session) Close() {
	s.clear()
}

// track attaches a notice sink to ctx. The returned func stores and
// publishes the collected notices when this call owns the sink.
func (s *Session) track(ctx context.Context) (context.Context, *noticeSink, func()) {
	ctx, sink, owned := withSink(ctx)
	return ctx, sink, func() {
		if !owned {
			return
		}
		s.notices = append([]domain.Notice(nil), sink.notices...)
		s.svc.publishNotices(ctx, s.panel.ID, s.user.ID, sink.notices)
	}
}

func (s *Session) viewer() recipe.Viewer {
	return recipe.Viewer{
		User:      s.user,
		Actor:     s.actor,
		Panel:     s.panel,
		Unlocked:  s.unlocked,
		Elements:  s.agg.Elements,
		Materials: s.agg.Materials,
	}
}

func (s *Session) recipes() []*domain.Recipe {
	out := make([]*domain.Recipe, len(s.panel.Recipes))
	for i := range s.panel.Recipes {
		out[i] = &s.panel.Recipes[i]
	}
	return out
}

// Recompute refreshes, in order, the aggregates, the recipes the user may
// see and use, and the modifier eligibility and budget.
func (s *Session) Recompute(ctx context.Context) error {
	if s.svc.ledger != nil && s.panel.UnlockRecipes {
		ids, err := s.svc.ledger.UnlockedIDs(ctx, s.user.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgLoadUnlocks, err)
		}
		s.unlocked = ids
	}

	s.agg = element.Aggregate(s.contents, s.panel.Elements)
	v := s.viewer()
	if s.panel.UsesRecipes() {
		s.usable, s.visible = s.svc.gate.Filter(ctx, v, s.recipes())
	}
	s.mods.Recompute(ctx, v)
	return nil
}

func (s *Session) slot(index int) (*domain.Slot, error) {
	if index < 0 || index >= len(s.panel.Slots) {
		return nil, fmt.Errorf("%s: %d | %w", ErrMsgSlotOutOfRange, index, domain.ErrSlotNotFound)
	}
	return &s.panel.Slots[index], nil
}

func (s *Session) slotLocked(ctx context.Context, slot *domain.Slot) bool {
	if slot.UnlockCondition != "" {
		res, _ := s.svc.invoker.Run(ctx, domain.ScriptSiteSlotUnlock, slot.UnlockCondition, recipe.UnlockArgs(s.viewer(), slot))
		return !script.Truthy(res)
	}
	return slot.IsLocked
}

// placedElsewhere sums what other slots already hold of itemUUID.
func (s *Session) placedElsewhere(itemUUID string, index int) int {
	total := 0
	for i, c := range s.contents {
		if i != index && c.Item != nil && c.Item.UUID == itemUUID {
			total += c.Quantity
		}
	}
	return total
}

// Place puts quantity units of an item into a slot, replacing what the
// slot held. A zero quantity places a single unit.
func (s *Session) Place(ctx context.Context, index int, itemUUID string, quantity int) error {
	ctx, _, done := s.track(ctx)
	defer done()

	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaceCalled, "panel", s.panel.ID, "user_id", s.user.ID, "slot", index, "item", itemUUID, "quantity", quantity)

	slot, err := s.slot(index)
	if err != nil {
		return err
	}
	if quantity == 0 {
		quantity = domain.DefaultPlacedQuantity
	}
	if quantity < 0 {
		return fmt.Errorf("%s must be positive, got %d | %w", domain.ErrMsgInvalidQuantity, quantity, domain.ErrInvalidInput)
	}
	if s.slotLocked(ctx, slot) {
		return fmt.Errorf("slot '%s' | %w", slot.ID, domain.ErrSlotLocked)
	}

	item, err := s.svc.store.GetItem(ctx, itemUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgGetItem, err)
	}
	if s.actor != nil && item.OwnerID != s.actor.ID {
		return fmt.Errorf("%s: '%s' | %w", ErrMsgNotInInventory, item.Name, domain.ErrItemRejected)
	}
	if !s.accepts(ctx, slot, item) {
		return fmt.Errorf("%s: '%s' in slot '%s' | %w", ErrMsgNotAccepted, item.Name, slot.ID, domain.ErrItemRejected)
	}
	available := s.svc.quantity.Quantity(item) - s.placedElsewhere(item.UUID, index)
	if quantity > available {
		return fmt.Errorf("'%s': %d placed, %d available | %w", item.Name, quantity, available, domain.ErrInsufficientMaterial)
	}

	prev := s.contents[index]
	s.contents[index] = domain.SlotContent{Item: item, Quantity: quantity}
	if err := s.Recompute(ctx); err != nil {
		s.contents[index] = prev
		return err
	}
	return nil
}

// Remove empties a slot
func (s *Session) Remove(ctx context.Context, index int) error {
	ctx, _, done := s.track(ctx)
	defer done()

	logger.FromContext(ctx).Info(LogMsgRemoveCalled, "panel", s.panel.ID, "user_id", s.user.ID, "slot", index)

	if _, err := s.slot(index); err != nil {
		return err
	}
	s.contents[index] = domain.SlotContent{}
	return s.Recompute(ctx)
}

// ToggleModifier selects or deselects a modifier
func (s *Session) ToggleModifier(ctx context.Context, id string) modifier.Rejection {
	ctx, _, done := s.track(ctx)
	defer done()

	log := logger.FromContext(ctx)
	log.Info(LogMsgToggleCalled, "panel", s.panel.ID, "user_id", s.user.ID, "modifier", id)

	r := s.mods.Toggle(ctx, id)
	if !r.OK() {
		metrics.RecordModifierRejection(string(r))
		log.Info(LogMsgModifierRejected, "modifier", id, "reason", r)
	}
	return r
}

func (s *Session) missingNecessary() (int, bool) {
	for i, slot := range s.panel.Slots {
		if slot.IsNecessary && s.contents[i].Item == nil {
			return i, true
		}
	}
	return 0, false
}

// clear empties every slot and deselects every modifier
func (s *Session) clear() {
	s.contents = make([]domain.SlotContent, len(s.panel.Slots))
	s.agg = element.Result{}
	s.mods.Reset()
}
