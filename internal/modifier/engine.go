// Package modifier tracks which modifiers a crafting session has selected,
// enforces their budget and category limits, and rewrites craft results.
package modifier

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/element"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/matching"
	"github.com/osse101/CraftPanel_Go/internal/recipe"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

// Cost is the modifier budget. Value is what remains after chosen
// non-auto modifiers are paid for.
type Cost struct {
	Max   float64 `json:"max"`
	Value float64 `json:"value"`
}

// State is the per-modifier view exposed to callers. Eligible reports
// whether the ingredients are met. Affordable additionally accounts for
// the remaining budget and category limits, so an unchosen modifier can be
// selected right now only when it is Affordable.
type State struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	Auto       bool    `json:"auto"`
	Locked     bool    `json:"locked"`
	Eligible   bool    `json:"eligible"`
	Affordable bool    `json:"affordable"`
	Chosen     bool    `json:"chosen"`
}

// Engine holds the modifier selection of one crafting session.
type Engine struct {
	panel   *domain.Panel
	invoker *script.Invoker

	viewer   recipe.Viewer
	locked   map[string]bool
	eligible map[string]bool
	auto     map[string]bool
	chosen   []string // non-auto, in selection order
	cost     Cost
}

// NewEngine creates an Engine for panel.
func NewEngine(panel *domain.Panel, invoker *script.Invoker) *Engine {
	return &Engine{
		panel:    panel,
		invoker:  invoker,
		locked:   make(map[string]bool),
		eligible: make(map[string]bool),
		auto:     make(map[string]bool),
	}
}

// Recompute refreshes eligibility against the viewer's current aggregates,
// forces eligible auto modifiers in, drops chosen modifiers that are no
// longer eligible and reconciles the budget.
func (e *Engine) Recompute(ctx context.Context, v recipe.Viewer) {
	log := logger.FromContext(ctx)
	e.viewer = v
	e.cost.Max = e.costMax(ctx, v)

	for i := range e.panel.Modifiers {
		m := &e.panel.Modifiers[i]
		e.locked[m.ID] = e.isLocked(ctx, m)
		e.eligible[m.ID] = !e.locked[m.ID] && matching.Ingredients(v.Elements, v.Materials, m.Ingredients).Satisfied
		e.auto[m.ID] = m.Auto && e.eligible[m.ID]
	}

	kept := e.chosen[:0]
	for _, id := range e.chosen {
		if e.eligible[id] && !e.auto[id] {
			kept = append(kept, id)
			continue
		}
		log.Debug(LogMsgModifierDropped, "modifier", id)
	}
	e.chosen = kept

	e.reconcile(ctx)
}

// Toggle deselects a chosen modifier or selects an unchosen one. Selection
// re-checks lock state, eligibility, category limits and budget.
func (e *Engine) Toggle(ctx context.Context, id string) Rejection {
	m := e.find(id)
	if m == nil {
		return RejectUnknown
	}
	if m.Auto {
		return RejectAuto
	}

	for i, c := range e.chosen {
		if c == id {
			e.chosen = append(e.chosen[:i], e.chosen[i+1:]...)
			e.cost.Value += m.Cost
			return RejectNone
		}
	}

	if e.isLocked(ctx, m) {
		e.locked[id] = true
		return RejectLocked
	}
	if !matching.Ingredients(e.viewer.Elements, e.viewer.Materials, m.Ingredients).Satisfied {
		return RejectUnavailable
	}
	if e.categoryFull(m) {
		return RejectCategoryLimit
	}
	if m.Cost > e.cost.Value {
		return RejectBudget
	}

	e.chosen = append(e.chosen, id)
	e.cost.Value -= m.Cost
	return RejectNone
}

// Select applies toggles for ids that are not chosen yet, returning the
// rejection of each id that could not be selected.
func (e *Engine) Select(ctx context.Context, ids []string) map[string]Rejection {
	rejected := make(map[string]Rejection)
	for _, id := range ids {
		if e.IsChosen(id) || e.auto[id] {
			continue
		}
		if r := e.Toggle(ctx, id); !r.OK() {
			rejected[id] = r
		}
	}
	return rejected
}

// IsChosen reports whether id is active, either chosen or forced in as auto.
func (e *Engine) IsChosen(id string) bool {
	if e.auto[id] {
		return true
	}
	for _, c := range e.chosen {
		if c == id {
			return true
		}
	}
	return false
}

// Chosen returns the active modifiers in panel order.
func (e *Engine) Chosen() []*domain.Modifier {
	var out []*domain.Modifier
	for i := range e.panel.Modifiers {
		m := &e.panel.Modifiers[i]
		if e.IsChosen(m.ID) {
			out = append(out, m)
		}
	}
	return out
}

// ChosenIDs returns the ids of Chosen.
func (e *Engine) ChosenIDs() []string {
	var ids []string
	for _, m := range e.Chosen() {
		ids = append(ids, m.ID)
	}
	return ids
}

// ManualIDs returns the user-selected modifiers in selection order.
func (e *Engine) ManualIDs() []string {
	return append([]string(nil), e.chosen...)
}

// Cost returns the current budget.
func (e *Engine) Cost() Cost {
	return e.cost
}

// States returns the view of every modifier in panel order.
func (e *Engine) States() []State {
	out := make([]State, 0, len(e.panel.Modifiers))
	for i := range e.panel.Modifiers {
		m := &e.panel.Modifiers[i]
		chosen := e.IsChosen(m.ID)
		affordable := e.eligible[m.ID]
		if affordable && !chosen && !m.Auto {
			affordable = m.Cost <= e.cost.Value && !e.categoryFull(m)
		}
		out = append(out, State{
			ID:         m.ID,
			Name:       m.Name,
			Cost:       m.Cost,
			Auto:       m.Auto,
			Locked:     e.locked[m.ID],
			Eligible:   e.eligible[m.ID],
			Affordable: affordable,
			Chosen:     chosen,
		})
	}
	return out
}

// Reset deselects every modifier and forgets eligibility.
func (e *Engine) Reset() {
	e.chosen = nil
	e.locked = make(map[string]bool)
	e.eligible = make(map[string]bool)
	e.auto = make(map[string]bool)
	e.cost = Cost{}
	e.viewer = recipe.Viewer{}
}

// reconcile recomputes the remaining budget and deselects the earliest
// chosen modifiers until it is non-negative.
func (e *Engine) reconcile(ctx context.Context) {
	e.cost.Value = e.cost.Max
	for _, id := range e.chosen {
		if m := e.find(id); m != nil {
			e.cost.Value -= m.Cost
		}
	}
	for e.cost.Value < 0 && len(e.chosen) > 0 {
		id := e.chosen[0]
		e.chosen = e.chosen[1:]
		if m := e.find(id); m != nil {
			e.cost.Value += m.Cost
		}
		logger.FromContext(ctx).Debug(LogMsgBudgetReconciled, "modifier", id)
	}
}

func (e *Engine) costMax(ctx context.Context, v recipe.Viewer) float64 {
	max := e.panel.Cost.Base
	if e.panel.Cost.Element != "" {
		max += element.Lookup(v.Elements, e.panel.Cost.Element)
	}
	if e.panel.Cost.Script != "" {
		args := append(recipe.UnlockArgs(v, e.panel.Cost), script.Arg{Name: "max", Value: max})
		if res, ok := e.invoker.Run(ctx, domain.ScriptSiteCost, e.panel.Cost.Script, args); ok {
			switch n := res.(type) {
			case int:
				max = float64(n)
			case float64:
				max = n
			}
		}
	}
	if max < 0 {
		return 0
	}
	return max
}

func (e *Engine) isLocked(ctx context.Context, m *domain.Modifier) bool {
	if m.IsLocked {
		return true
	}
	if m.UnlockCondition == "" {
		return false
	}
	res, _ := e.invoker.Run(ctx, domain.ScriptSiteUnlock, m.UnlockCondition, recipe.UnlockArgs(e.viewer, m))
	return !script.Truthy(res)
}

// categoryFull reports whether any limited category of m already holds its
// limit of manual picks. Auto modifiers never count toward a limit.
func (e *Engine) categoryFull(m *domain.Modifier) bool {
	for _, catID := range m.Category {
		cat, ok := e.panel.Category(catID)
		if !ok || cat.Limit <= 0 {
			continue
		}
		if e.countInCategory(catID) >= cat.Limit {
			return true
		}
	}
	return false
}

func (e *Engine) countInCategory(catID string) int {
	n := 0
	for _, id := range e.chosen {
		m := e.find(id)
		if m == nil {
			continue
		}
		for _, c := range m.Category {
			if c == catID {
				n++
				break
			}
		}
	}
	return n
}

func (e *Engine) find(id string) *domain.Modifier {
	for i := range e.panel.Modifiers {
		if e.panel.Modifiers[i].ID == id {
			return &e.panel.Modifiers[i]
		}
	}
	return nil
}
