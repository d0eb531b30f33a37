package domain

// ResultType is the kind of document a recipe result points at.
type ResultType string

const (
	ResultItem      ResultType = "Item"
	ResultRollTable ResultType = "RollTable"
)

// RecipeResult is one declared output of a recipe or blend panel.
type RecipeResult struct {
	UUID     string     `json:"uuid" yaml:"uuid"`
	Quantity int        `json:"quantity" yaml:"quantity"`
	Type     ResultType `json:"type" yaml:"type"`
}

// Recipe maps an ingredient requirement set to produced results.
type Recipe struct {
	ID              string                    `json:"id" yaml:"id"`
	Name            string                    `json:"name" yaml:"name"`
	Img             string                    `json:"img,omitempty" yaml:"img,omitempty"`
	Ingredients     []ElementRequirement      `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Results         []RecipeResult            `json:"results,omitempty" yaml:"results,omitempty"`
	Weight          float64                   `json:"weight,omitempty" yaml:"weight,omitempty"`
	IsLocked        bool                      `json:"isLocked,omitempty" yaml:"isLocked,omitempty"`
	UnlockCondition string                    `json:"unlockCondition,omitempty" yaml:"unlockCondition,omitempty"`
	CraftScript     string                    `json:"craftScript,omitempty" yaml:"craftScript,omitempty"`
	Category        []string                  `json:"category,omitempty" yaml:"category,omitempty"`
	Ownership       map[string]OwnershipLevel `json:"ownership,omitempty" yaml:"ownership,omitempty"`
	Sort            int                       `json:"sort,omitempty" yaml:"sort,omitempty"`
}

// EffectiveWeight returns the tie-break weight, defaulting to DefaultRecipeWeight.
func (r *Recipe) EffectiveWeight() float64 {
	if r.Weight <= 0 {
		return DefaultRecipeWeight
	}
	return r.Weight
}
