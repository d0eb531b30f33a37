package repository

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// Ledger defines the interface for per-user recipe ledgers
type Ledger interface {
	GetUnlockedRecipes(ctx context.Context, userID string) ([]domain.UnlockedRecipe, error)
	UnlockRecipe(ctx context.Context, userID string, recipe domain.UnlockedRecipe) error

	ListStoredRecipes(ctx context.Context, userID, panelID string) ([]domain.StoredRecipe, error)
	GetStoredRecipe(ctx context.Context, userID, id string) (*domain.StoredRecipe, error)
	SaveStoredRecipe(ctx context.Context, recipe *domain.StoredRecipe) error
	DeleteStoredRecipe(ctx context.Context, userID, id string) error
}

// Store is a backend serving both crafting and ledger persistence
type Store interface {
	Crafting
	Ledger
	Ping(ctx context.Context) error
	Close()
}
