package naming

// ============================================================================
// Suggestion Limits
// ============================================================================

// Edit distance allowed for a suggestion, by length of the candidate name
const (
	ShortNameLength  = 4
	MediumNameLength = 8

	ShortNameDistance  = 1
	MediumNameDistance = 2
	LongNameDistance   = 3
)

// MinPrefixLength is the shortest query that may match a name by prefix
const MinPrefixLength = 2

// ============================================================================
// Messages
// ============================================================================

// SuggestionFormat renders a "did you mean" hint
const SuggestionFormat = "did you mean %q?"
