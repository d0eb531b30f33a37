package domain

import "time"

// UnlockedRecipe is an entry of a user's permanent unlock ledger.
type UnlockedRecipe struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Img       string                    `json:"img,omitempty"`
	Ownership map[string]OwnershipLevel `json:"ownership,omitempty"`
}

// StoredSlot records what one slot held when a recipe was stored.
type StoredSlot struct {
	SlotIndex int    `json:"slot_index"`
	ItemUUID  string `json:"item_uuid"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
}

// StoredRecipe is a craft configuration snapshot a user can recall.
type StoredRecipe struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	PanelID   string       `json:"panel_id"`
	Name      string       `json:"name"`
	Slots     []StoredSlot `json:"slots"`
	Modifiers []string     `json:"modifiers,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
