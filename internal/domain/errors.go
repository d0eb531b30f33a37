package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Document errors
	ErrMsgItemNotFound         = "item not found"
	ErrMsgActorNotFound        = "actor not found"
	ErrMsgUserNotFound         = "user not found"
	ErrMsgRollTableNotFound    = "roll table not found"
	ErrMsgUnresolvedReference  = "unresolved reference"
	ErrMsgPanelNotFound        = "panel not found"
	ErrMsgSessionNotFound      = "session not found"
	ErrMsgStoredRecipeNotFound = "stored recipe not found"

	// Crafting errors
	ErrMsgNecessarySlotEmpty    = "necessary slot is empty"
	ErrMsgInsufficientMaterial  = "insufficient material"
	ErrMsgCraftCanceled         = "craft canceled"
	ErrMsgSlotLocked            = "slot is locked"
	ErrMsgSlotNotFound          = "slot not found"
	ErrMsgItemRejected          = "item rejected by slot"
	ErrMsgInvalidChange         = "invalid change"
	ErrMsgScriptFailed          = "script failed"
	ErrMsgMaterialNoLongerExist = "material no longer exists"

	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidQuantity = "quantity"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("details | %w", domain.ErrXxx) for additional context.
var (
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrActorNotFound        = errors.New(ErrMsgActorNotFound)
	ErrUserNotFound         = errors.New(ErrMsgUserNotFound)
	ErrRollTableNotFound    = errors.New(ErrMsgRollTableNotFound)
	ErrUnresolvedReference  = errors.New(ErrMsgUnresolvedReference)
	ErrPanelNotFound        = errors.New(ErrMsgPanelNotFound)
	ErrSessionNotFound      = errors.New(ErrMsgSessionNotFound)
	ErrStoredRecipeNotFound = errors.New(ErrMsgStoredRecipeNotFound)

	ErrNecessarySlotEmpty   = errors.New(ErrMsgNecessarySlotEmpty)
	ErrInsufficientMaterial = errors.New(ErrMsgInsufficientMaterial)
	ErrCraftCanceled        = errors.New(ErrMsgCraftCanceled)
	ErrSlotLocked           = errors.New(ErrMsgSlotLocked)
	ErrSlotNotFound         = errors.New(ErrMsgSlotNotFound)
	ErrItemRejected         = errors.New(ErrMsgItemRejected)
	ErrInvalidChange        = errors.New(ErrMsgInvalidChange)
	ErrScriptFailed         = errors.New(ErrMsgScriptFailed)
	ErrMaterialGone         = errors.New(ErrMsgMaterialNoLongerExist)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrDatabase     = errors.New(ErrMsgDatabaseError)
	ErrTxClosed     = errors.New(ErrMsgTxClosed)
)
