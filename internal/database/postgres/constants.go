package postgres

// Error Messages
const (
	ErrMsgFailedToBeginTx        = "failed to begin transaction"
	ErrMsgFailedToCommitTx       = "failed to commit transaction"
	ErrMsgFailedToGetItem        = "failed to get item"
	ErrMsgFailedToListItems      = "failed to list items"
	ErrMsgFailedToUpdateItem     = "failed to update item"
	ErrMsgFailedToDeleteItem     = "failed to delete item"
	ErrMsgFailedToCreateItems    = "failed to create items"
	ErrMsgFailedToGetRollTable   = "failed to get roll table"
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToGetActor       = "failed to get actor"
	ErrMsgFailedToEncode         = "failed to encode column"
	ErrMsgFailedToDecode         = "failed to decode column"
	ErrMsgFailedToGetUnlocked    = "failed to get unlocked recipes"
	ErrMsgFailedToUnlockRecipe   = "failed to unlock recipe"
	ErrMsgFailedToListStored     = "failed to list stored recipes"
	ErrMsgFailedToGetStored      = "failed to get stored recipe"
	ErrMsgFailedToSaveStored     = "failed to save stored recipe"
	ErrMsgFailedToDeleteStored   = "failed to delete stored recipe"
	ErrMsgFailedToUpsertDocument = "failed to upsert document"
	ErrMsgFailedToLogEvent       = "failed to log event"
	ErrMsgFailedToGetEvents      = "failed to get events"
	ErrMsgFailedToCleanupEvents  = "failed to clean up events"
)

const itemColumns = "item_uuid, name, img, item_type, folder, owner_id, elements, data"
