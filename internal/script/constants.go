package script

// Source prefixes
const (
	// GoPrefix routes a source to the registered Go function of that name.
	GoPrefix = "go:"
)

// Lua type names
const (
	craftTypeName = "craft"
)

// Log message constants
const (
	LogMsgScriptFailed   = "Script failed"
	LogMsgScriptPanicked = "Script panicked"
)

// Error message constants
const (
	ErrMsgUnknownFunction = "unknown script function"
	ErrMsgLoadFailed      = "load script"
	ErrMsgRunFailed       = "run script"
)
