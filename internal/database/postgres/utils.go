package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// encodeJSON marshals v for a JSONB column, mapping nil to fallback.
func encodeJSON(v interface{}, fallback string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncode, err)
	}
	if string(b) == "null" {
		return []byte(fallback), nil
	}
	return b, nil
}

func decodeJSON(raw []byte, v interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDecode, err)
	}
	return nil
}

// scanItem reads one row selected with itemColumns.
func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item     domain.Item
		elements []byte
		data     []byte
	)
	if err := row.Scan(&item.UUID, &item.Name, &item.Img, &item.Type, &item.Folder, &item.OwnerID, &elements, &data); err != nil {
		return nil, err
	}
	if err := decodeJSON(elements, &item.Elements); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		item.Data = json.RawMessage(data)
	}
	return &item, nil
}

// itemArgs returns the insert arguments for item in itemColumns order.
func itemArgs(item *domain.Item) ([]interface{}, error) {
	elements, err := encodeJSON(item.Elements, "[]")
	if err != nil {
		return nil, err
	}
	data := []byte(item.Data)
	if len(data) == 0 {
		data = []byte("{}")
	}
	return []interface{}{item.UUID, item.Name, item.Img, item.Type, item.Folder, item.OwnerID, elements, data}, nil
}
