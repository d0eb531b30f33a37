package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

type opKind int

const (
	opConsume opKind = iota
	opCreate
)

type op struct {
	kind   opKind
	uuid   string
	amount int
	item   *domain.Item
}

// tx stages writes and applies them under the store lock on Commit, so a
// transaction is either fully visible or not at all.
type tx struct {
	store  *Store
	ops    []op
	closed bool
}

// ConsumeItem checks the amount against the stock as it stands now, less
// what this transaction already took, and stages the write. Commit checks
// again against the stock at that moment.
func (t *tx) ConsumeItem(ctx context.Context, uuid string, amount int) (int, error) {
	if t.closed {
		return 0, domain.ErrTxClosed
	}
	s := t.store
	s.mu.RLock()
	stored, ok := s.items[uuid]
	var (
		name string
		have int
	)
	if ok {
		name, have = stored.Name, s.quantity.Quantity(stored)
	}
	s.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("item %s | %w", uuid, domain.ErrItemNotFound)
	}

	for _, o := range t.ops {
		if o.kind == opConsume && o.uuid == uuid {
			have -= o.amount
		}
	}
	left := have - amount
	if left < 0 {
		return have, fmt.Errorf("%s needs %d, has %d | %w", name, amount, have, domain.ErrInsufficientMaterial)
	}
	t.ops = append(t.ops, op{kind: opConsume, uuid: uuid, amount: amount})
	return left, nil
}

func (t *tx) CreateItems(ctx context.Context, ownerID string, items []domain.Item) ([]domain.Item, error) {
	if t.closed {
		return nil, domain.ErrTxClosed
	}
	created := make([]domain.Item, 0, len(items))
	for i := range items {
		item := items[i].Clone()
		item.UUID = domain.ItemUUIDPrefix + uuid.NewString()
		item.OwnerID = ownerID
		t.ops = append(t.ops, op{kind: opCreate, uuid: item.UUID, item: item})
		created = append(created, *item.Clone())
	}
	return created, nil
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage every write against copies before touching the store
	updated := make(map[string]*domain.Item)
	left := make(map[string]int)
	for _, o := range t.ops {
		if o.kind != opConsume {
			continue
		}
		current, ok := updated[o.uuid]
		if !ok {
			stored, exists := s.items[o.uuid]
			if !exists {
				return fmt.Errorf("item %s | %w", o.uuid, domain.ErrItemNotFound)
			}
			current = stored.Clone()
			left[o.uuid] = s.quantity.Quantity(stored)
		}
		if left[o.uuid] < o.amount {
			return fmt.Errorf("%s needs %d, has %d | %w", current.Name, o.amount, left[o.uuid], domain.ErrInsufficientMaterial)
		}
		left[o.uuid] -= o.amount
		if err := s.quantity.SetQuantity(current, left[o.uuid]); err != nil {
			return fmt.Errorf("item %s | %w", o.uuid, err)
		}
		updated[o.uuid] = current
	}

	for uuid, item := range updated {
		if left[uuid] == 0 {
			delete(s.items, uuid)
			continue
		}
		s.items[uuid] = item
	}
	for _, o := range t.ops {
		if o.kind == opCreate {
			s.items[o.uuid] = o.item
		}
	}
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.closed = true
	t.ops = nil
	return nil
}
