package database

import (
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/utils"
)

// Seed is the initial content loaded into a store at start-up.
type Seed struct {
	Users      []domain.User      `json:"users"`
	Actors     []domain.Actor     `json:"actors"`
	Items      []domain.Item      `json:"items"`
	RollTables []domain.RollTable `json:"roll_tables"`
}

// LoadSeed reads a JSON or YAML seed file.
func LoadSeed(path string) (*Seed, error) {
	var seed Seed
	if err := utils.LoadDocument(path, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}
