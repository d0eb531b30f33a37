package domain

// Slot is a placement point for one ingredient.
type Slot struct {
	ID              string            `json:"id" yaml:"id"`
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Size            int               `json:"size,omitempty" yaml:"size,omitempty"`
	Shape           string            `json:"shape,omitempty" yaml:"shape,omitempty"`
	Hue             int               `json:"hue,omitempty" yaml:"hue,omitempty"`
	IsNecessary     bool              `json:"isNecessary,omitempty" yaml:"isNecessary,omitempty"`
	IsConsumed      bool              `json:"isConsumed,omitempty" yaml:"isConsumed,omitempty"`
	IsLocked        bool              `json:"isLocked,omitempty" yaml:"isLocked,omitempty"`
	UnlockCondition string            `json:"unlockCondition,omitempty" yaml:"unlockCondition,omitempty"`
	Position        int               `json:"position,omitempty" yaml:"position,omitempty"`
	Accepts         []ItemRequirement `json:"accepts,omitempty" yaml:"accepts,omitempty"`
}

// SlotContent is the item currently occupying a slot and the placed quantity.
type SlotContent struct {
	Item     *Item `json:"item"`
	Quantity int   `json:"quantity"`
}
