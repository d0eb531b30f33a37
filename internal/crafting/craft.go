package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

// Outcome is what a committed craft produced
type Outcome struct {
	Recipe    *domain.Recipe    `json:"recipe,omitempty"`
	Modifiers []string          `json:"modifiers,omitempty"`
	Consumed  []domain.Material `json:"consumed,omitempty"`
	Kept      []domain.Material `json:"kept,omitempty"`
	Produced  []domain.Product  `json:"produced"`
	OwnerID   string            `json:"owner_id"`
	Unlocked  bool              `json:"unlocked,omitempty"`
	Summary   string            `json:"summary"`
	Notices   []domain.Notice   `json:"notices,omitempty"`
}

// Craft consumes the slot contents and produces the resolved results.
// Validation failures leave the session and the store untouched; on
// success the slots are cleared and modifiers deselected. A craft that
// matches no recipe or ends with no results still consumes its materials.
func (s *Session) Craft(ctx context.Context) (*Outcome, error) {
	ctx, sink, done := s.track(ctx)
	defer done()

	log := logger.FromContext(ctx)
	log.Info(LogMsgCraftCalled, "panel", s.panel.ID, "user_id", s.user.ID)

	if idx, missing := s.missingNecessary(); missing {
		sink.warn(MsgNecessarySlotEmpty)
		return nil, s.abort(ctx, fmt.Errorf("slot '%s' | %w", s.panel.Slots[idx].ID, domain.ErrNecessarySlotEmpty))
	}

	tx := &domain.Transaction{SelectedModifiers: s.mods.ChosenIDs()}
	handle := newTxHandle(tx, s.svc.quantity)

	s.materialize(ctx, tx, sink)

	s.svc.invoker.Run(ctx, domain.ScriptSitePre, s.panel.PreScript, s.craftArgs(handle, tx))

	var chosen *domain.Recipe
	declared := s.panel.Results
	if s.panel.UsesRecipes() {
		chosen = s.svc.resolver.Resolve(s.usable, s.agg.Elements, s.agg.Materials)
		declared = nil
		if chosen == nil {
			sink.info(MsgNoMatchingRecipe)
		} else {
			declared = chosen.Results
		}
	}

	if err := s.expandResults(ctx, tx, declared, sink); err != nil {
		return nil, s.abort(ctx, err)
	}

	args := s.craftArgs(handle, tx)
	if chosen != nil && chosen.CraftScript != "" {
		recipeArgs := append(append(script.Args(nil), args...), script.Arg{Name: "doc", Value: chosen})
		s.svc.invoker.Run(ctx, domain.ScriptSiteRecipe, chosen.CraftScript, recipeArgs)
	}
	sink.extend(s.svc.rewriter.Apply(ctx, tx, s.mods.Chosen(), s.panel.MergeEffects, args))

	if tx.Canceled {
		sink.warn(MsgCanceled)
		return nil, s.abort(ctx, domain.ErrCraftCanceled)
	}
	if len(tx.Results) == 0 {
		sink.info(MsgNothingToProduce)
	}

	plan, err := s.plan(tx, sink)
	if err != nil {
		return nil, s.abort(ctx, err)
	}
	produced, err := s.commit(ctx, plan, tx)
	if err != nil {
		return nil, s.abort(ctx, err)
	}

	out := &Outcome{
		Recipe:    chosen,
		Modifiers: tx.SelectedModifiers,
		Consumed:  plan.consumed,
		Kept:      plan.kept,
		Produced:  produced,
		OwnerID:   plan.owner,
	}
	out.Summary = summarize(out)
	if out.Summary != "" {
		sink.info(out.Summary)
	}

	out.Unlocked = s.unlock(ctx, chosen, sink)

	s.svc.invoker.Run(ctx, domain.ScriptSitePost, s.panel.PostScript, s.craftArgs(handle, tx))

	s.clear()
	if err := s.Recompute(ctx); err != nil {
		log.Warn(LogMsgRecomputeFailed, "panel", s.panel.ID, "error", err)
	}

	s.svc.publishCompleted(ctx, s, out)
	out.Notices = append([]domain.Notice(nil), sink.notices...)

	log.Info(LogMsgCraftCompleted, "panel", s.panel.ID, "user_id", s.user.ID, "produced", len(out.Produced), "consumed", len(out.Consumed))
	return out, nil
}

// abort reports a craft that stopped before anything was written.
func (s *Session) abort(ctx context.Context, err error) error {
	logger.FromContext(ctx).Warn(LogMsgCraftAborted, "panel", s.panel.ID, "user_id", s.user.ID, "reason", err)
	s.svc.publish(ctx, event.NewCraftAbortedEvent(s.panel.ID, s.user.ID, err.Error()))
	return err
}

// materialize gathers the filled slots into consolidated materials. Slots
// holding the same item with the same consumption flag merge. Items that
// can no longer be read cancel the craft without stopping the scan.
func (s *Session) materialize(ctx context.Context, tx *domain.Transaction, sink *noticeSink) {
	for i, c := range s.contents {
		if c.Item == nil {
			continue
		}
		item, err := s.svc.store.GetItem(ctx, c.Item.UUID)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgMaterialMissing, "item", c.Item.UUID, "error", err)
			sink.warn(fmt.Sprintf(MsgMaterialMissing, c.Item.Name))
			tx.Canceled = true
			continue
		}
		addMaterial(tx, item, s.panel.Slots[i].IsConsumed, c.Quantity)
	}
}

func addMaterial(tx *domain.Transaction, item *domain.Item, consumed bool, quantity int) {
	if quantity <= 0 {
		quantity = domain.DefaultPlacedQuantity
	}
	for i := range tx.Materials {
		m := &tx.Materials[i]
		if m.Item.UUID == item.UUID && m.IsConsumed == consumed {
			m.Quantity += quantity
			return
		}
	}
	tx.Materials = append(tx.Materials, domain.Material{Item: item, IsConsumed: consumed, Quantity: quantity})
}

// craftArgs builds the arguments of pre, post and craft scripts:
// (craft, panel, actor, recipes, elements, materials, canceled).
func (s *Session) craftArgs(handle *txHandle, tx *domain.Transaction) script.Args {
	return script.Args{
		{Name: "craft", Value: handle},
		{Name: "panel", Value: s.panel},
		{Name: "actor", Value: s.actor},
		{Name: "recipes", Value: s.usable},
		{Name: "elements", Value: s.agg.Elements},
		{Name: "materials", Value: s.agg.Materials},
		{Name: "canceled", Value: tx.Canceled},
	}
}

// unlock records the crafted recipe in the user's ledger when the panel
// asks for it. Ledger failures do not undo the craft.
func (s *Session) unlock(ctx context.Context, r *domain.Recipe, sink *noticeSink) bool {
	if r == nil || !s.panel.UnlockRecipes || s.user.Privileged || s.svc.ledger == nil || s.unlocked[r.ID] {
		return false
	}
	added, err := s.svc.ledger.Unlock(ctx, s.user.ID, r)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgUnlockFailed, "recipe_id", r.ID, "error", err)
		return false
	}
	if added {
		sink.info(fmt.Sprintf(MsgRecipeUnlocked, r.Name))
	}
	return added
}
