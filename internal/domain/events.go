package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "craft.completed")
const (
	// EventTypeCraftCompleted is published when a craft commits its inventory changes
	EventTypeCraftCompleted = "craft.completed"

	// EventTypeCraftAborted is published when a craft stops before committing
	EventTypeCraftAborted = "craft.aborted"

	// EventTypeRecipeUnlocked is published when a recipe joins a user's unlock ledger
	EventTypeRecipeUnlocked = "recipe.unlocked"

	// EventTypeNoticeRaised is published for every user-visible notice
	EventTypeNoticeRaised = "notice.raised"
)
