package domain

// RequirementType tells the matcher which aggregate a requirement targets.
type RequirementType string

const (
	RequirementElement  RequirementType = "element"
	RequirementMaterial RequirementType = "material"
)

// ElementRequirement constrains the aggregated quantity of one id.
// For material requirements the id is the item name.
type ElementRequirement struct {
	ID     string          `json:"id" yaml:"id"`
	Type   RequirementType `json:"type" yaml:"type"`
	UseMin bool            `json:"useMin,omitempty" yaml:"useMin,omitempty"`
	Min    float64         `json:"min,omitempty" yaml:"min,omitempty"`
	UseMax bool            `json:"useMax,omitempty" yaml:"useMax,omitempty"`
	Max    float64         `json:"max,omitempty" yaml:"max,omitempty"`
}

// SplitRequirements separates an ingredient list by requirement type.
// An empty type counts as an element requirement.
func SplitRequirements(reqs []ElementRequirement) (elements, materials []ElementRequirement) {
	for _, r := range reqs {
		if r.Type == RequirementMaterial {
			materials = append(materials, r)
			continue
		}
		elements = append(elements, r)
	}
	return elements, materials
}

// ItemRequirementKind tags an ItemRequirement variant.
type ItemRequirementKind string

const (
	ItemRequirementName   ItemRequirementKind = "name"
	ItemRequirementType   ItemRequirementKind = "type"
	ItemRequirementFolder ItemRequirementKind = "folder"
	ItemRequirementScript ItemRequirementKind = "script"
)

// ItemRequirement is one variant of a slot acceptance filter. Variants in
// one list are OR'd: an item is accepted when any of them matches.
type ItemRequirement struct {
	Kind  ItemRequirementKind `json:"kind" yaml:"kind"`
	Value string              `json:"value" yaml:"value"`
}
