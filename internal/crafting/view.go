package crafting

import (
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/modifier"
	"github.com/osse101/CraftPanel_Go/internal/recipe"
)

// SlotView is one slot and what it holds
type SlotView struct {
	Index    int          `json:"index"`
	Slot     domain.Slot  `json:"slot"`
	Item     *domain.Item `json:"item,omitempty"`
	Quantity int          `json:"quantity,omitempty"`
}

// RecipeView is a recipe the user can see. Matched marks the recipes the
// current ingredients would resolve to.
type RecipeView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Img     string `json:"img,omitempty"`
	Matched bool   `json:"matched"`
}

// View is a read-only snapshot of a session
type View struct {
	PanelID   string                `json:"panel_id"`
	PanelName string                `json:"panel_name"`
	Kind      domain.PanelKind      `json:"kind"`
	UserID    string                `json:"user_id"`
	Communal  bool                  `json:"communal"`
	Slots     []SlotView            `json:"slots"`
	Elements  []domain.ShownElement `json:"elements"`
	Materials []domain.Element      `json:"materials"`
	Recipes   []RecipeView          `json:"recipes,omitempty"`
	Modifiers []modifier.State      `json:"modifiers,omitempty"`
	Cost      modifier.Cost         `json:"cost"`
	Notices   []domain.Notice       `json:"notices,omitempty"`
}

// View snapshots the session
func (s *Session) View() *View {
	v := &View{
		PanelID:   s.panel.ID,
		PanelName: s.panel.Name,
		Kind:      s.panel.Kind,
		UserID:    s.user.ID,
		Communal:  s.actor == nil,
		Slots:     make([]SlotView, len(s.panel.Slots)),
		Elements:  s.agg.Shown,
		Materials: s.agg.Materials,
		Modifiers: s.mods.States(),
		Cost:      s.mods.Cost(),
		Notices:   s.notices,
	}
	for i, slot := range s.panel.Slots {
		v.Slots[i] = SlotView{Index: i, Slot: slot, Item: s.contents[i].Item, Quantity: s.contents[i].Quantity}
	}

	matched := make(map[string]bool)
	for _, c := range recipe.Best(recipe.Candidates(s.usable, s.agg.Elements, s.agg.Materials)) {
		matched[c.Recipe.ID] = true
	}
	for _, r := range s.visible {
		v.Recipes = append(v.Recipes, RecipeView{ID: r.ID, Name: r.Name, Img: r.Img, Matched: matched[r.ID]})
	}
	return v
}
