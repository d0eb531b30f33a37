package repository

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// Crafting defines the interface for crafting persistence
type Crafting interface {
	GetItem(ctx context.Context, uuid string) (*domain.Item, error)
	ListItems(ctx context.Context, ownerID string) ([]domain.Item, error)
	GetRollTable(ctx context.Context, uuid string) (*domain.RollTable, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetActor(ctx context.Context, actorID string) (*domain.Actor, error)

	// BeginTx starts a transaction for the inventory settlement of a craft
	BeginTx(ctx context.Context) (CraftingTx, error)
}

// CraftingTx defines the interface for crafting transactions
type CraftingTx interface {
	Tx
	// ConsumeItem takes amount from the item's stored quantity, deleting the
	// item when nothing is left. It reads the quantity inside the transaction
	// and fails with domain.ErrInsufficientMaterial when the stock is short.
	ConsumeItem(ctx context.Context, uuid string, amount int) (left int, err error)
	// CreateItems inserts items under ownerID and returns them with their new UUIDs
	CreateItems(ctx context.Context, ownerID string, items []domain.Item) ([]domain.Item, error)
}
