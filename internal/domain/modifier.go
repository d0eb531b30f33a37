package domain

// ChangeMode selects how a Change combines with the current property value.
type ChangeMode string

const (
	ChangeCustom    ChangeMode = "CUSTOM"
	ChangeMultiply  ChangeMode = "MULTIPLY"
	ChangeAdd       ChangeMode = "ADD"
	ChangeDowngrade ChangeMode = "DOWNGRADE"
	ChangeUpgrade   ChangeMode = "UPGRADE"
	ChangeOverride  ChangeMode = "OVERRIDE"
)

// Change patches one property of a produced item. Value is the raw
// authored text; it is parsed as JSON when possible.
type Change struct {
	Key   string     `json:"key" yaml:"key"`
	Mode  ChangeMode `json:"mode" yaml:"mode"`
	Value string     `json:"value" yaml:"value"`
}

// Modifier is an optional rule that alters produced results.
type Modifier struct {
	ID              string               `json:"id" yaml:"id"`
	Name            string               `json:"name" yaml:"name"`
	Img             string               `json:"img,omitempty" yaml:"img,omitempty"`
	Description     string               `json:"description,omitempty" yaml:"description,omitempty"`
	Ingredients     []ElementRequirement `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Changes         []Change             `json:"changes,omitempty" yaml:"changes,omitempty"`
	Cost            float64              `json:"cost,omitempty" yaml:"cost,omitempty"`
	Auto            bool                 `json:"auto,omitempty" yaml:"auto,omitempty"`
	IsLocked        bool                 `json:"isLocked,omitempty" yaml:"isLocked,omitempty"`
	UnlockCondition string               `json:"unlockCondition,omitempty" yaml:"unlockCondition,omitempty"`
	Category        []string             `json:"category,omitempty" yaml:"category,omitempty"`
	AsAE            bool                 `json:"asAE,omitempty" yaml:"asAE,omitempty"`
	CraftScript     string               `json:"craftScript,omitempty" yaml:"craftScript,omitempty"`
	Sort            int                  `json:"sort,omitempty" yaml:"sort,omitempty"`
}

// Category groups modifiers. Limit caps how many members may be chosen at
// once; zero means unlimited.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Limit int    `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// CostConfig describes the modifier budget of a panel.
type CostConfig struct {
	Base    float64 `json:"base,omitempty" yaml:"base,omitempty"`
	Element string  `json:"element,omitempty" yaml:"element,omitempty"` // aggregated element added to Base
	Script  string  `json:"script,omitempty" yaml:"script,omitempty"`
}

// StatusEffect is a synthesized effect record attached to a produced item.
type StatusEffect struct {
	ID      string   `json:"_id"`
	Name    string   `json:"name"`
	Img     string   `json:"img,omitempty"`
	Origin  string   `json:"origin,omitempty"`
	Changes []Change `json:"changes"`
}
