package eventlog

import "github.com/osse101/CraftPanel_Go/internal/event"

// AuditedTypes are the event types written to the audit log
var AuditedTypes = []event.Type{
	event.CraftCompleted,
	event.CraftAborted,
	event.RecipeUnlocked,
}

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Query limits
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Log messages - service events
const (
	LogMsgEventPayloadNotMap = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent   = "Failed to write audit event"
	LogMsgEventLogged        = "Audit event written"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting audit log cleanup job"
	LogMsgCleanupJobFailed    = "Audit log cleanup failed"
	LogMsgCleanupJobCompleted = "Audit log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldUserID        = "user_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
