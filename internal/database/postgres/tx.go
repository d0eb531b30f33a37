package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
)

// craftingTx implements repository.CraftingTx over a pgx.Tx
type craftingTx struct {
	tx       pgx.Tx
	quantity pathutil.Accessor
}

// ConsumeItem locks the item row, checks the stock it holds now and then
// rewrites or deletes it.
func (t *craftingTx) ConsumeItem(ctx context.Context, itemUUID string, amount int) (int, error) {
	row := t.tx.QueryRow(ctx, "SELECT "+itemColumns+" FROM items WHERE item_uuid = $1 FOR UPDATE", itemUUID)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("item %s | %w", itemUUID, domain.ErrItemNotFound)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}

	have := t.quantity.Quantity(item)
	left := have - amount
	if left < 0 {
		return have, fmt.Errorf("%s needs %d, has %d | %w", item.Name, amount, have, domain.ErrInsufficientMaterial)
	}

	if left == 0 {
		if _, err := t.tx.Exec(ctx, "DELETE FROM items WHERE item_uuid = $1", itemUUID); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
		}
		return 0, nil
	}
	if err := t.quantity.SetQuantity(item, left); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	if _, err := t.tx.Exec(ctx, "UPDATE items SET data = $2 WHERE item_uuid = $1", itemUUID, []byte(item.Data)); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	return left, nil
}

func (t *craftingTx) CreateItems(ctx context.Context, ownerID string, items []domain.Item) ([]domain.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}
	batch := &pgx.Batch{}
	created := make([]domain.Item, 0, len(items))
	for i := range items {
		item := items[i].Clone()
		item.UUID = domain.ItemUUIDPrefix + uuid.NewString()
		item.OwnerID = ownerID
		args, err := itemArgs(item)
		if err != nil {
			return nil, err
		}
		batch.Queue("INSERT INTO items ("+itemColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)", args...)
		created = append(created, *item)
	}

	br := t.tx.SendBatch(ctx, batch)
	defer br.Close()
	for range created {
		if _, err := br.Exec(); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateItems, err)
		}
	}
	return created, nil
}

func (t *craftingTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}

func (t *craftingTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
