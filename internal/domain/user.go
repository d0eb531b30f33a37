package domain

// OwnershipLevel is a user's access level on a document.
type OwnershipLevel int

const (
	OwnershipNone     OwnershipLevel = 0
	OwnershipLimited  OwnershipLevel = 1
	OwnershipObserver OwnershipLevel = 2
	OwnershipOwner    OwnershipLevel = 3
)

// DefaultOwnershipKey holds the level applied to users without an explicit entry.
const DefaultOwnershipKey = "default"

// User is a person driving a crafting session.
type User struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Privileged bool   `json:"privileged,omitempty" yaml:"privileged,omitempty"` // game master
	ActorID    string `json:"actor_id,omitempty" yaml:"actor_id,omitempty"`
}

// LevelFor resolves the ownership level of userID in an ownership map.
func LevelFor(ownership map[string]OwnershipLevel, userID string) OwnershipLevel {
	if lvl, ok := ownership[userID]; ok {
		return lvl
	}
	return ownership[DefaultOwnershipKey]
}
