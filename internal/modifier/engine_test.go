package modifier

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/recipe"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

func newPanel() *domain.Panel {
	return &domain.Panel{
		ID:   "forge",
		Cost: domain.CostConfig{Base: 5, Element: "essence"},
		Categories: []domain.Category{
			{ID: "edge", Name: "Edge", Limit: 1},
			{ID: "free", Name: "Free"},
		},
		Modifiers: []domain.Modifier{
			{ID: "sharp", Name: "Sharp", Cost: 3, Category: []string{"edge"}},
			{ID: "keen", Name: "Keen", Cost: 2, Category: []string{"edge"}},
			{ID: "heavy", Name: "Heavy", Cost: 10},
			{ID: "glow", Name: "Glow", Auto: true, Cost: 50,
				Ingredients: []domain.ElementRequirement{{ID: "light", Type: domain.RequirementElement, UseMin: true, Min: 1}}},
			{ID: "sealed", Name: "Sealed", IsLocked: true},
			{ID: "fiery", Name: "Fiery", Cost: 1,
				Ingredients: []domain.ElementRequirement{{ID: "fire", Type: domain.RequirementElement, UseMin: true, Min: 2}}},
			{ID: "cheap", Name: "Cheap", Cost: 1, Category: []string{"free"}},
		},
	}
}

func newEngine(p *domain.Panel, funcs *script.FuncProvider) *Engine {
	if funcs == nil {
		funcs = script.NewFuncProvider()
	}
	return NewEngine(p, script.NewInvoker(funcs, nil))
}

func viewer(elems ...domain.Element) recipe.Viewer {
	return recipe.Viewer{User: domain.User{ID: "u1"}, Elements: elems}
}

func TestToggle_BudgetRejection(t *testing.T) {
	e := newEngine(newPanel(), nil)
	ctx := context.Background()
	e.Recompute(ctx, viewer())
	require.Equal(t, Cost{Max: 5, Value: 5}, e.Cost())

	r := e.Toggle(ctx, "heavy")
	assert.Equal(t, RejectBudget, r)
	assert.Equal(t, MsgRejectBudget, r.Message())
	assert.Empty(t, e.ManualIDs())
	assert.Equal(t, 5.0, e.Cost().Value)
}

func TestToggle_SelectAndDeselect(t *testing.T) {
	e := newEngine(newPanel(), nil)
	ctx := context.Background()
	e.Recompute(ctx, viewer())

	assert.True(t, e.Toggle(ctx, "sharp").OK())
	assert.Equal(t, 2.0, e.Cost().Value)
	assert.Equal(t, []string{"sharp"}, e.ChosenIDs())

	assert.True(t, e.Toggle(ctx, "sharp").OK())
	assert.Equal(t, 5.0, e.Cost().Value)
	assert.Empty(t, e.ChosenIDs())
}

func TestToggle_Rejections(t *testing.T) {
	e := newEngine(newPanel(), nil)
	ctx := context.Background()
	e.Recompute(ctx, viewer(domain.Element{ID: "light", Num: 1}))

	assert.Equal(t, RejectUnknown, e.Toggle(ctx, "nope"))
	assert.Equal(t, RejectAuto, e.Toggle(ctx, "glow"))
	assert.Equal(t, RejectLocked, e.Toggle(ctx, "sealed"))
	assert.Equal(t, RejectUnavailable, e.Toggle(ctx, "fiery"))

	require.True(t, e.Toggle(ctx, "sharp").OK())
	assert.Equal(t, RejectCategoryLimit, e.Toggle(ctx, "keen"))
	assert.True(t, e.Toggle(ctx, "cheap").OK(), "categories without limit accept members")
}

func statesByID(e *Engine) map[string]State {
	out := make(map[string]State)
	for _, st := range e.States() {
		out[st.ID] = st
	}
	return out
}

func TestStates_Affordable(t *testing.T) {
	e := newEngine(newPanel(), nil)
	ctx := context.Background()
	e.Recompute(ctx, viewer())

	states := statesByID(e)
	assert.True(t, states["heavy"].Eligible)
	assert.False(t, states["heavy"].Affordable, "cost exceeds the remaining budget")
	assert.True(t, states["keen"].Affordable)
	assert.False(t, states["fiery"].Affordable, "ineligible modifiers are never affordable")

	require.True(t, e.Toggle(ctx, "sharp").OK())
	states = statesByID(e)
	assert.True(t, states["sharp"].Affordable, "chosen modifiers stay affordable")
	assert.True(t, states["keen"].Eligible)
	assert.False(t, states["keen"].Affordable, "edge category is full")
	assert.True(t, states["cheap"].Affordable)

	// Affordable agrees with what Toggle accepts
	for id, st := range states {
		if st.Chosen || st.Auto || st.Locked {
			continue
		}
		fresh := newEngine(newPanel(), nil)
		fresh.Recompute(ctx, viewer())
		require.True(t, fresh.Toggle(ctx, "sharp").OK())
		assert.Equal(t, st.Affordable, fresh.Toggle(ctx, id).OK(), id)
	}
}

func TestCategoryLimit_IgnoresAutoModifiers(t *testing.T) {
	p := newPanel()
	p.Modifiers = append(p.Modifiers, domain.Modifier{ID: "gleam", Name: "Gleam", Auto: true, Category: []string{"edge"},
		Ingredients: []domain.ElementRequirement{{ID: "light", Type: domain.RequirementElement, UseMin: true, Min: 1}}})
	e := newEngine(p, nil)
	ctx := context.Background()

	e.Recompute(ctx, viewer(domain.Element{ID: "light", Num: 1}))
	require.True(t, e.IsChosen("gleam"))

	// The active auto modifier does not fill the edge limit of one
	assert.True(t, statesByID(e)["sharp"].Affordable)
	assert.True(t, e.Toggle(ctx, "sharp").OK())
	assert.Equal(t, RejectCategoryLimit, e.Toggle(ctx, "keen"))
}

func TestRecompute_AutoModifiers(t *testing.T) {
	e := newEngine(newPanel(), nil)
	ctx := context.Background()

	e.Recompute(ctx, viewer())
	assert.False(t, e.IsChosen("glow"))

	e.Recompute(ctx, viewer(domain.Element{ID: "light", Num: 2}))
	assert.True(t, e.IsChosen("glow"))
	assert.Equal(t, 5.0, e.Cost().Value, "auto modifiers do not consume budget")
	assert.Equal(t, []string{"glow"}, e.ChosenIDs())
}

func TestRecompute_DropsIneligible(t *testing.T) {
	e := newEngine(newPanel(), nil)
	ctx := context.Background()

	e.Recompute(ctx, viewer(domain.Element{ID: "fire", Num: 2}))
	require.True(t, e.Toggle(ctx, "fiery").OK())

	e.Recompute(ctx, viewer(domain.Element{ID: "fire", Num: 1}))
	assert.False(t, e.IsChosen("fiery"))
	assert.Equal(t, 5.0, e.Cost().Value)
}

func TestRecompute_ReconcilesBudget(t *testing.T) {
	p := newPanel()
	p.Cost.Base = 0
	e := newEngine(p, nil)
	ctx := context.Background()

	e.Recompute(ctx, viewer(domain.Element{ID: "essence", Num: 5}))
	require.Equal(t, 5.0, e.Cost().Max)
	require.True(t, e.Toggle(ctx, "sharp").OK())
	require.True(t, e.Toggle(ctx, "cheap").OK())
	require.Equal(t, 1.0, e.Cost().Value)

	e.Recompute(ctx, viewer(domain.Element{ID: "essence", Num: 2}))
	assert.Equal(t, []string{"cheap"}, e.ManualIDs(), "earliest selection is dropped first")
	assert.Equal(t, 1.0, e.Cost().Value)
}

func TestBudgetNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := newEngine(newPanel(), nil)
	ctx := context.Background()
	ids := []string{"sharp", "keen", "heavy", "glow", "sealed", "fiery", "cheap"}

	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 {
			e.Recompute(ctx, viewer(
				domain.Element{ID: "essence", Num: float64(rng.Intn(8))},
				domain.Element{ID: "fire", Num: float64(rng.Intn(4))},
				domain.Element{ID: "light", Num: float64(rng.Intn(2))},
			))
		} else {
			e.Toggle(ctx, ids[rng.Intn(len(ids))])
		}
		assert.GreaterOrEqual(t, e.Cost().Value, 0.0)
	}
}

func TestUnlockConditionAndCostScript(t *testing.T) {
	funcs := script.NewFuncProvider()
	open := false
	funcs.Register("gate", func(ctx context.Context, a script.Args) (interface{}, error) { return open, nil })
	funcs.Register("double", func(ctx context.Context, a script.Args) (interface{}, error) {
		max, _ := a.Get("max")
		return max.(float64) * 2, nil
	})

	p := newPanel()
	p.Cost.Script = "go:double"
	p.Modifiers = append(p.Modifiers, domain.Modifier{ID: "gated", Cost: 1, UnlockCondition: "go:gate"})
	e := newEngine(p, funcs)
	ctx := context.Background()

	e.Recompute(ctx, viewer())
	assert.Equal(t, 10.0, e.Cost().Max)
	assert.Equal(t, RejectLocked, e.Toggle(ctx, "gated"))

	open = true
	assert.True(t, e.Toggle(ctx, "gated").OK(), "lock state is re-checked at selection")
}

func TestSelectAndReset(t *testing.T) {
	e := newEngine(newPanel(), nil)
	ctx := context.Background()
	e.Recompute(ctx, viewer())

	rejected := e.Select(ctx, []string{"sharp", "keen", "heavy", "cheap"})
	assert.Equal(t, map[string]Rejection{"keen": RejectCategoryLimit, "heavy": RejectBudget}, rejected)
	assert.Equal(t, []string{"sharp", "cheap"}, e.ChosenIDs())

	states := e.States()
	require.Len(t, states, 7)
	assert.True(t, states[0].Chosen)
	assert.True(t, states[4].Locked)

	e.Reset()
	assert.Empty(t, e.ChosenIDs())
	assert.Equal(t, Cost{}, e.Cost())
}
