package modifier

// User-facing rejection messages
const (
	MsgRejectUnknown       = "This modifier does not exist on the panel."
	MsgRejectAuto          = "This modifier is applied automatically."
	MsgRejectLocked        = "This modifier is locked."
	MsgRejectUnavailable   = "The current ingredients do not allow this modifier."
	MsgRejectCategoryLimit = "No more modifiers can be chosen from this category."
	MsgRejectBudget        = "Not enough budget left for this modifier."
)

// Log message constants
const (
	LogMsgModifierDropped    = "Modifier no longer eligible, deselected"
	LogMsgBudgetReconciled   = "Budget exceeded, deselected modifier"
	LogMsgChangeSkipped      = "Skipping invalid change"
	LogMsgEffectAttachFailed = "Failed to attach status effect"
)

// ModifierUUIDPrefix prefixes the origin of synthesized status effects.
const ModifierUUIDPrefix = "Modifier."
