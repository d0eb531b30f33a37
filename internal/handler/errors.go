package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"
)

// Operation names used in logs and error responses
const (
	OpListPanels   = "List panels"
	OpOpenSession  = "Open session"
	OpViewSession  = "View session"
	OpCloseSession = "Close session"
	OpPlaceItem    = "Place item"
	OpRemoveItem   = "Remove item"
	OpToggle       = "Toggle modifier"
	OpCraft        = "Craft"
	OpStoreRecipe  = "Store recipe"
	OpListStored   = "List stored recipes"
	OpRecallRecipe = "Recall recipe"
	OpDeleteStored = "Delete stored recipe"
)

// Success messages for API responses
const (
	MsgSessionClosed       = "Session closed"
	MsgStoredRecipeDeleted = "Stored recipe deleted"
)
