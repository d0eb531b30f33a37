package crafting

// Log messages
const (
	LogMsgOpenCalled        = "OpenSession called"
	LogMsgPlaceCalled       = "Place called"
	LogMsgRemoveCalled      = "Remove called"
	LogMsgToggleCalled      = "ToggleModifier called"
	LogMsgCraftCalled       = "Craft called"
	LogMsgStoreCalled       = "StoreRecipe called"
	LogMsgRecallCalled      = "RecallRecipe called"
	LogMsgCraftCompleted    = "Craft completed"
	LogMsgCraftAborted      = "Craft aborted"
	LogMsgMaterialMissing   = "Material could not be resolved, canceling craft"
	LogMsgModifierRejected  = "Modifier selection rejected"
	LogMsgUnlockFailed      = "Failed to record unlocked recipe"
	LogMsgPublishFailed     = "Failed to publish crafting event"
	LogMsgSelectionDropped  = "Stored modifier could not be selected"
	LogMsgRollTableExpanded = "Roll table expanded"
	LogMsgRecomputeFailed   = "Failed to recompute session after craft"
)

// Error messages
const (
	ErrMsgGetUser         = "failed to get user"
	ErrMsgGetActor        = "failed to get actor"
	ErrMsgGetItem         = "failed to get item"
	ErrMsgLoadUnlocks     = "failed to load unlocked recipes"
	ErrMsgBeginTx         = "failed to begin transaction"
	ErrMsgCommitTx        = "failed to commit transaction"
	ErrMsgConsumeMaterial = "failed to consume material"
	ErrMsgCreateProducts  = "failed to create products"
	ErrMsgSlotOutOfRange  = "slot index out of range"
	ErrMsgNotInInventory  = "item is not in the actor's inventory"
	ErrMsgNotAccepted     = "item does not satisfy the slot filter"
	ErrMsgLoadStored      = "failed to load stored recipe"
	ErrMsgStoredSlotGone  = "stored slot no longer exists on the panel"
	ErrMsgResultReference = "result references a missing document"
)

// User-facing notice texts
const (
	MsgNecessarySlotEmpty = "Fill every required slot before crafting."
	MsgNoMatchingRecipe   = "These ingredients do not match any recipe."
	MsgNothingToProduce   = "This craft produced nothing."
	MsgScriptError        = "A %s script failed; see the log for details."
	MsgMaterialMissing    = "%s is no longer available."
	MsgInsufficient       = "Not enough %s: %d needed, %d available."
	MsgUnresolved         = "%s could not be found."
	MsgCanceled           = "The craft was canceled."
	MsgRecipeUnlocked     = "You learned %s."
)

// Summary headings
const (
	summaryKept     = "kept"
	summaryConsumed = "consumed"
	summaryProduced = "produced"
)
