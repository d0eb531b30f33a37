package recipe

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

// Access is the visibility of a recipe for one user.
type Access struct {
	Visible bool
	Usable  bool
}

// Viewer describes who is looking at a panel and what they have unlocked.
type Viewer struct {
	User      domain.User
	Actor     *domain.Actor
	Panel     *domain.Panel
	Unlocked  map[string]bool
	Elements  []domain.Element
	Materials []domain.Element
}

// Gate evaluates unlock conditions and ownership to decide which recipes a
// viewer may see and use.
type Gate struct {
	invoker *script.Invoker
}

// NewGate creates a Gate running unlock conditions through invoker.
func NewGate(invoker *script.Invoker) *Gate {
	return &Gate{invoker: invoker}
}

// Access decides the visibility of one recipe.
func (g *Gate) Access(ctx context.Context, v Viewer, r *domain.Recipe) Access {
	if r.UnlockCondition != "" {
		res, _ := g.invoker.Run(ctx, domain.ScriptSiteUnlock, r.UnlockCondition, UnlockArgs(v, r))
		return scriptAccess(res)
	}

	if v.User.Privileged {
		return Access{Visible: true, Usable: true}
	}
	if r.IsLocked {
		return Access{}
	}

	level := domain.OwnershipOwner
	if len(r.Ownership) > 0 {
		level = domain.LevelFor(r.Ownership, v.User.ID)
	}
	acc := Access{
		Usable:  level >= domain.OwnershipLimited,
		Visible: level >= domain.OwnershipObserver,
	}
	if v.Panel != nil && v.Panel.UnlockRecipes && !v.Unlocked[r.ID] {
		acc.Visible = false
	}
	return acc
}

// Filter splits recipes into those usable for matching and those shown to the viewer.
func (g *Gate) Filter(ctx context.Context, v Viewer, recipes []*domain.Recipe) (usable, visible []*domain.Recipe) {
	for _, r := range recipes {
		acc := g.Access(ctx, v, r)
		if acc.Usable {
			usable = append(usable, r)
		}
		if acc.Visible {
			visible = append(visible, r)
		}
	}
	return usable, visible
}

// UnlockArgs builds the argument list of an unlock condition script:
// (actor, host, document, panel).
func UnlockArgs(v Viewer, doc interface{}) script.Args {
	host := map[string]interface{}{
		"user":      v.User,
		"elements":  v.Elements,
		"materials": v.Materials,
	}
	return script.Args{
		{Name: "actor", Value: v.Actor},
		{Name: "host", Value: host},
		{Name: "doc", Value: doc},
		{Name: "panel", Value: v.Panel},
	}
}

func scriptAccess(res interface{}) Access {
	if s, ok := res.(string); ok {
		switch s {
		case domain.ScriptResultShow:
			return Access{Visible: true, Usable: true}
		case domain.ScriptResultUnlock:
			return Access{Usable: true}
		}
	}
	if script.Truthy(res) {
		return Access{Visible: true, Usable: true}
	}
	return Access{}
}
