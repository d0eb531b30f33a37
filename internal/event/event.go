package event

import (
	"time"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata carries routing hints that are not part of the payload
type Metadata map[string]interface{}

// Event is a versioned, typed message on the Bus
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// PanelID returns the panel the event concerns, if recorded
func (e Event) PanelID() string {
	id, _ := e.Metadata[MetadataKeyPanelID].(string)
	return id
}

// Crafting event types
const (
	CraftCompleted Type = domain.EventTypeCraftCompleted
	CraftAborted   Type = domain.EventTypeCraftAborted
	RecipeUnlocked Type = domain.EventTypeRecipeUnlocked
	NoticeRaised   Type = domain.EventTypeNoticeRaised
)

// ItemQuantityV1 names an item and a quantity moved by a craft
type ItemQuantityV1 struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CraftCompletedPayloadV1 is the typed payload for committed crafts
type CraftCompletedPayloadV1 struct {
	PanelID   string           `json:"panel_id"`
	PanelName string           `json:"panel_name"`
	UserID    string           `json:"user_id"`
	ActorID   string           `json:"actor_id,omitempty"`
	RecipeID  string           `json:"recipe_id,omitempty"`
	Modifiers []string         `json:"modifiers,omitempty"`
	Consumed  []ItemQuantityV1 `json:"consumed,omitempty"`
	Kept      []ItemQuantityV1 `json:"kept,omitempty"`
	Produced  []ItemQuantityV1 `json:"produced,omitempty"`
	Timestamp int64            `json:"timestamp"`
}

// CraftAbortedPayloadV1 is the typed payload for crafts that stopped before commit
type CraftAbortedPayloadV1 struct {
	PanelID   string `json:"panel_id"`
	UserID    string `json:"user_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// RecipeUnlockedPayloadV1 is the typed payload for unlock ledger additions
type RecipeUnlockedPayloadV1 struct {
	UserID     string `json:"user_id"`
	RecipeID   string `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Timestamp  int64  `json:"timestamp"`
}

// NoticeRaisedPayloadV1 is the typed payload for user-visible notices
type NoticeRaisedPayloadV1 struct {
	PanelID string             `json:"panel_id"`
	UserID  string             `json:"user_id"`
	Level   domain.NoticeLevel `json:"level"`
	Message string             `json:"message"`
}

// NewCraftCompletedEvent creates a craft completed event
func NewCraftCompletedEvent(payload CraftCompletedPayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    CraftCompleted,
		Payload: payload,
		Metadata: Metadata{MetadataKeyPanelID: payload.PanelID},
	}
}

// NewCraftAbortedEvent creates a craft aborted event
func NewCraftAbortedEvent(panelID, userID, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CraftAborted,
		Payload: CraftAbortedPayloadV1{
			PanelID:   panelID,
			UserID:    userID,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: Metadata{MetadataKeyPanelID: panelID},
	}
}

// NewRecipeUnlockedEvent creates a recipe unlocked event
func NewRecipeUnlockedEvent(userID, recipeID, recipeName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RecipeUnlocked,
		Payload: RecipeUnlockedPayloadV1{
			UserID:     userID,
			RecipeID:   recipeID,
			RecipeName: recipeName,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewNoticeRaisedEvent creates a notice event
func NewNoticeRaisedEvent(panelID, userID string, notice domain.Notice) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    NoticeRaised,
		Payload: NoticeRaisedPayloadV1{
			PanelID: panelID,
			UserID:  userID,
			Level:   notice.Level,
			Message: notice.Message,
		},
		Metadata: Metadata{MetadataKeyPanelID: panelID},
	}
}
