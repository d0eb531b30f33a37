package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Crafting metric names
const (
	MetricNameCraftsTotal        = "crafts_total"
	MetricNameItemsConsumed      = "items_consumed_total"
	MetricNameItemsProduced      = "items_produced_total"
	MetricNameRecipesUnlocked    = "recipes_unlocked_total"
	MetricNameNoticesRaised      = "notices_raised_total"
	MetricNameModifierRejections = "modifier_rejections_total"
	MetricNameScriptErrors       = "script_errors_total"
	MetricNameActiveSessions     = "crafting_sessions_active"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Crafting metric help text
const (
	HelpTextCraftsTotal        = "Total number of craft attempts by outcome"
	HelpTextItemsConsumed      = "Total quantity of items consumed by crafts"
	HelpTextItemsProduced      = "Total quantity of items produced by crafts"
	HelpTextRecipesUnlocked    = "Total number of recipes added to unlock ledgers"
	HelpTextNoticesRaised      = "Total number of user-visible notices by level"
	HelpTextModifierRejections = "Total number of rejected modifier selections by reason"
	HelpTextScriptErrors       = "Total number of failed user scripts by call site"
	HelpTextActiveSessions     = "Current number of open crafting sessions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelPanel   = "panel"
	LabelOutcome = "outcome"
	LabelLevel   = "level"
	LabelReason  = "reason"
	LabelSite    = "site"
)

// Craft outcome label values
const (
	OutcomeCompleted = "completed"
	OutcomeAborted   = "aborted"
)

// UnmatchedRoute labels requests that did not match a router pattern
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
