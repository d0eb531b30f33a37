package domain

// PanelKind selects how a panel produces results.
type PanelKind string

const (
	// PanelRecipe panels resolve one of their recipes against the slot contents.
	PanelRecipe PanelKind = "recipe"
	// PanelBlend panels produce their own declared results, rewritten by modifiers.
	PanelBlend PanelKind = "blend"
)

// Panel is a crafting panel document authored by the game master.
type Panel struct {
	ID            string                    `json:"id" yaml:"id"`
	Name          string                    `json:"name" yaml:"name"`
	Img           string                    `json:"img,omitempty" yaml:"img,omitempty"`
	Kind          PanelKind                 `json:"kind" yaml:"kind"`
	Slots         []Slot                    `json:"slots,omitempty" yaml:"slots,omitempty"`
	Recipes       []Recipe                  `json:"recipes,omitempty" yaml:"recipes,omitempty"`
	Modifiers     []Modifier                `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Categories    []Category                `json:"categories,omitempty" yaml:"categories,omitempty"`
	Elements      []ElementDisplayConfig    `json:"elements,omitempty" yaml:"elements,omitempty"`
	Results       []RecipeResult            `json:"results,omitempty" yaml:"results,omitempty"`
	Cost          CostConfig                `json:"cost,omitempty" yaml:"cost,omitempty"`
	PreScript     string                    `json:"preScript,omitempty" yaml:"preScript,omitempty"`
	PostScript    string                    `json:"postScript,omitempty" yaml:"postScript,omitempty"`
	UnlockRecipes bool                      `json:"unlockRecipes,omitempty" yaml:"unlockRecipes,omitempty"`
	MergeEffects  bool                      `json:"mergeEffects,omitempty" yaml:"mergeEffects,omitempty"`
	Ownership     map[string]OwnershipLevel `json:"ownership,omitempty" yaml:"ownership,omitempty"`
}

// UsesRecipes reports whether crafting on this panel runs the recipe resolver.
func (p *Panel) UsesRecipes() bool {
	return p.Kind != PanelBlend
}

// Category returns the category with the given id.
func (p *Panel) Category(id string) (Category, bool) {
	for _, c := range p.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// HoldingContainerID names the container receiving products of communal crafts.
func (p *Panel) HoldingContainerID() string {
	return HoldingContainerPrefix + p.Name
}
