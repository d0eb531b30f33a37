package ledger

// Log messages
const (
	LogMsgRecipeUnlocked      = "Recipe added to unlock ledger"
	LogMsgStoredRecipeSaved   = "Stored recipe saved"
	LogMsgStoredRecipeDeleted = "Stored recipe deleted"
	LogMsgPublishFailed       = "Failed to publish ledger event"
)

// Error messages
const (
	ErrMsgLoadLedger  = "failed to load unlock ledger"
	ErrMsgUnlock      = "failed to unlock recipe"
	ErrMsgStoreRecipe = "failed to store recipe"
)
