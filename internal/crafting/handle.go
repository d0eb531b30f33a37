package crafting

import (
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

// txHandle exposes a craft transaction to scripts.
type txHandle struct {
	tx       *domain.Transaction
	quantity pathutil.Accessor
}

var _ script.Craft = (*txHandle)(nil)

func newTxHandle(tx *domain.Transaction, quantity pathutil.Accessor) *txHandle {
	return &txHandle{tx: tx, quantity: quantity}
}

func (h *txHandle) Cancel() {
	h.tx.Canceled = true
}

func (h *txHandle) Canceled() bool {
	return h.tx.Canceled
}

func (h *txHandle) Results() []script.Entry {
	out := make([]script.Entry, 0, len(h.tx.Results))
	for _, r := range h.tx.Results {
		out = append(out, script.Entry{UUID: r.Item.UUID, Name: r.Item.Name, Quantity: r.Quantity})
	}
	return out
}

func (h *txHandle) Materials() []script.Entry {
	out := make([]script.Entry, 0, len(h.tx.Materials))
	for _, m := range h.tx.Materials {
		out = append(out, script.Entry{UUID: m.Item.UUID, Name: m.Item.Name, Quantity: m.Quantity, Consumed: m.IsConsumed})
	}
	return out
}

func (h *txHandle) result(uuid string) int {
	for i, r := range h.tx.Results {
		if r.Item.UUID == uuid {
			return i
		}
	}
	return -1
}

// SetResultQuantity sets a product's quantity; zero or less removes it.
func (h *txHandle) SetResultQuantity(uuid string, quantity int) bool {
	i := h.result(uuid)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		return h.RemoveResult(uuid)
	}
	h.tx.Results[i].Quantity = quantity
	return true
}

func (h *txHandle) RemoveResult(uuid string) bool {
	i := h.result(uuid)
	if i < 0 {
		return false
	}
	h.tx.Results = append(h.tx.Results[:i], h.tx.Results[i+1:]...)
	return true
}

func (h *txHandle) SetResultField(uuid, path string, value interface{}) error {
	i := h.result(uuid)
	if i < 0 {
		return fmt.Errorf("result '%s' | %w", uuid, domain.ErrItemNotFound)
	}
	return h.quantity.SetField(h.tx.Results[i].Item, path, value)
}

// SetMaterialQuantity changes how much of a material the craft uses,
// preferring the consumed entry when the item appears twice.
func (h *txHandle) SetMaterialQuantity(uuid string, quantity int) bool {
	if quantity < 0 {
		return false
	}
	found := -1
	for i, m := range h.tx.Materials {
		if m.Item.UUID != uuid {
			continue
		}
		if found < 0 || m.IsConsumed {
			found = i
		}
	}
	if found < 0 {
		return false
	}
	h.tx.Materials[found].Quantity = quantity
	return true
}
