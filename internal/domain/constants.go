package domain

import "math"

// Matching constants
const (
	// DefaultRecipeWeight is the tie-break weight of a recipe with no declared weight.
	DefaultRecipeWeight = 100.0

	// ElementScoreFactor scales the element match term of a recipe score.
	ElementScoreFactor = 10.0

	// MaterialScoreFactor scales the material match term of a recipe score.
	MaterialScoreFactor = 100.0

	// MinBoundScoreFactor scales each enforced minimum in a match score.
	MinBoundScoreFactor = 10.0

	// UnrelatedEntryPenalty is subtracted for each aggregate entry no requirement mentions.
	UnrelatedEntryPenalty = 1.0
)

// MinScore is the score of a requirement set with no requirements.
const MinScore = -math.MaxFloat64

// Placement and production defaults
const (
	DefaultPlacedQuantity = 1
	DefaultResultQuantity = 1
	DefaultQuantityPath   = "system.quantity"
	EffectsPath           = "effects"
)

// Roll table reference prefixes
const (
	ItemCollection       = "Item"
	ItemUUIDPrefix       = "Item."
	CompendiumUUIDPrefix = "Compendium."
)

// HoldingContainerPrefix prefixes the owner id of items produced by communal crafts.
const HoldingContainerPrefix = "holding:"

// Script result values understood by unlock conditions
const (
	ScriptResultShow   = "show"
	ScriptResultUnlock = "unlock"
	ScriptResultFalse  = "false"
)

// Script call sites, used for logging and metrics labels
const (
	ScriptSiteUnlock     = "unlock_condition"
	ScriptSiteSlotUnlock = "slot_unlock_condition"
	ScriptSiteAccepts    = "slot_accepts"
	ScriptSitePre        = "pre_script"
	ScriptSitePost       = "post_script"
	ScriptSiteRecipe     = "recipe_craft_script"
	ScriptSiteModifier   = "modifier_craft_script"
	ScriptSiteCost       = "cost_script"
)
