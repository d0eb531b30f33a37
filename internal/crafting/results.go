package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/rolltable"
)

// expandResults turns declared results into products. Item results clone
// their source document; roll table results draw one entry per unit. Any
// reference that cannot be resolved fails the whole expansion.
func (s *Session) expandResults(ctx context.Context, tx *domain.Transaction, declared []domain.RecipeResult, sink *noticeSink) error {
	for _, r := range declared {
		qty := r.Quantity
		if qty <= 0 {
			qty = domain.DefaultResultQuantity
		}

		if r.Type != domain.ResultRollTable {
			if err := s.addResult(ctx, tx, r.UUID, qty, sink); err != nil {
				return err
			}
			continue
		}

		table, err := s.svc.store.GetRollTable(ctx, r.UUID)
		if err != nil {
			sink.add(domain.NoticeError, fmt.Sprintf(MsgUnresolved, r.UUID))
			return fmt.Errorf("%s '%s': %v | %w", ErrMsgResultReference, r.UUID, err, domain.ErrUnresolvedReference)
		}
		for i := 0; i < qty; i++ {
			entry, ok := rolltable.Roll(table, s.svc.rnd)
			if !ok {
				break
			}
			if err := s.addResult(ctx, tx, rolltable.ReferenceUUID(entry), 1, sink); err != nil {
				return err
			}
		}
		logger.FromContext(ctx).Debug(LogMsgRollTableExpanded, "table", r.UUID, "rolls", qty)
	}
	return nil
}

func (s *Session) addResult(ctx context.Context, tx *domain.Transaction, uuid string, quantity int, sink *noticeSink) error {
	item, err := s.svc.store.GetItem(ctx, uuid)
	if err != nil {
		sink.add(domain.NoticeError, fmt.Sprintf(MsgUnresolved, uuid))
		return fmt.Errorf("%s '%s': %v | %w", ErrMsgResultReference, uuid, err, domain.ErrUnresolvedReference)
	}
	tx.AddResult(item.Clone(), quantity)
	return nil
}
