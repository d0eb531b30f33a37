package event

// EventSchemaVersion is stamped on every event this package constructs
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	MetadataKeyPanelID = "panel_id"
)

// Error messages
const (
	ErrMsgHandlersFailed  = "event handlers failed for"
	ErrMsgHandlerPanicked = "event handler panicked"
)
