package domain

// Element is a typed quantity contributed by one unit of an ingredient.
// ID identifies the kind of element and keys aggregation.
type Element struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Img    string  `json:"img,omitempty" yaml:"img,omitempty"`
	Class  string  `json:"class,omitempty" yaml:"class,omitempty"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty"`
	Num    float64 `json:"num" yaml:"num"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// MultiShow selects which member of a display group represents the group.
type MultiShow string

const (
	MultiShowMax MultiShow = "max"
	MultiShowMin MultiShow = "min"
)

// MultiValue selects how the values of a display group collapse into one.
type MultiValue string

const (
	MultiValueMax            MultiValue = "max"
	MultiValueMin            MultiValue = "min"
	MultiValueMaxPlusOthers  MultiValue = "maxPlusOthers"
	MultiValueMaxMinusOthers MultiValue = "maxMinusOthers"
	MultiValueMinPlusOthers  MultiValue = "minPlusOthers"
	MultiValueMinMinusOthers MultiValue = "minMinusOthers"
	MultiValueSum            MultiValue = "sum"
)

// Visibility is the display policy of an element group.
type Visibility string

const (
	VisibleAlways      Visibility = "always"
	VisibleNever       Visibility = "never"
	VisiblePositive    Visibility = "positive"
	VisibleNonPositive Visibility = "nonPositive"
)

// ElementDisplayConfig collapses several raw elements into one shown and
// matched value. The group takes the first entry of IDs as its identity.
type ElementDisplayConfig struct {
	IDs           []string   `json:"ids" yaml:"ids"`
	MultiShow     MultiShow  `json:"multiShow,omitempty" yaml:"multiShow,omitempty"`
	MultiValue    MultiValue `json:"multiValue,omitempty" yaml:"multiValue,omitempty"`
	UseMin        bool       `json:"useMin,omitempty" yaml:"useMin,omitempty"`
	Min           float64    `json:"min,omitempty" yaml:"min,omitempty"`
	UseMax        bool       `json:"useMax,omitempty" yaml:"useMax,omitempty"`
	Max           float64    `json:"max,omitempty" yaml:"max,omitempty"`
	PlusElements  []string   `json:"plusElements,omitempty" yaml:"plusElements,omitempty"`
	MinusElements []string   `json:"minusElements,omitempty" yaml:"minusElements,omitempty"`
	Visible       Visibility `json:"visible,omitempty" yaml:"visible,omitempty"`
	Value         string     `json:"value,omitempty" yaml:"value,omitempty"` // label override for display
	Shape         string     `json:"shape,omitempty" yaml:"shape,omitempty"`
	Size          int        `json:"size,omitempty" yaml:"size,omitempty"`
	Color         string     `json:"color,omitempty" yaml:"color,omitempty"`
}

// Has reports whether id belongs to the group.
func (c ElementDisplayConfig) Has(id string) bool {
	for _, v := range c.IDs {
		if v == id {
			return true
		}
	}
	return false
}

// ShownElement is a display-only entry produced by the aggregator.
type ShownElement struct {
	Element
	Label string `json:"label,omitempty"`
	Shape string `json:"shape,omitempty"`
	Size  int    `json:"size,omitempty"`
}
