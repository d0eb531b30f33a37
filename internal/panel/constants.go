package panel

// Log messages
const (
	LogMsgPanelLoaded      = "Panel loaded"
	LogMsgPanelsLoaded     = "Panels loaded"
	LogMsgPanelsDirMissing = "Panels directory does not exist, starting with no panels"
	LogMsgSessionOpened    = "Panel session opened"
	LogMsgSessionClosed    = "Panel session closed"
)

// Error messages
const (
	ErrMsgReadPanel     = "failed to read panel file"
	ErrMsgParsePanel    = "failed to parse panel file"
	ErrMsgSchemaPanel   = "panel file failed schema validation"
	ErrMsgReadPanelsDir = "failed to read panels directory"
)
