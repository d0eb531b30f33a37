package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/repository"
)

type consumption struct {
	uuid   string
	amount int
}

// settlement is the validated set of writes of one craft.
type settlement struct {
	owner    string
	consumes []consumption
	consumed []domain.Material
	kept     []domain.Material
}

// plan validates every consumed material before any write is issued.
// Without a bound actor nothing is consumed and products go to the
// panel's holding container.
func (s *Session) plan(tx *domain.Transaction, sink *noticeSink) (*settlement, error) {
	p := &settlement{owner: s.panel.HoldingContainerID()}
	if s.actor == nil {
		p.kept = append(p.kept, tx.Materials...)
		return p, nil
	}
	p.owner = s.actor.ID

	var order []string
	needed := make(map[string]int)
	items := make(map[string]*domain.Item)
	for _, m := range tx.Materials {
		if !m.IsConsumed || m.Quantity <= 0 {
			p.kept = append(p.kept, m)
			continue
		}
		if _, seen := needed[m.Item.UUID]; !seen {
			order = append(order, m.Item.UUID)
			items[m.Item.UUID] = m.Item
		}
		needed[m.Item.UUID] += m.Quantity
	}

	short := 0
	for _, uuid := range order {
		item := items[uuid]
		have := s.svc.quantity.Quantity(item)
		if have < needed[uuid] {
			sink.warn(fmt.Sprintf(MsgInsufficient, item.Name, needed[uuid], have))
			short++
			continue
		}
		p.consumes = append(p.consumes, consumption{uuid: uuid, amount: needed[uuid]})
		p.consumed = append(p.consumed, domain.Material{Item: item, IsConsumed: true, Quantity: needed[uuid]})
	}
	if short > 0 {
		return nil, fmt.Errorf("%d materials short | %w", short, domain.ErrInsufficientMaterial)
	}
	return p, nil
}

// commit consumes the materials and creates the products of a craft as one
// transaction and returns the products with their stored identities. The
// stock is checked again inside the transaction, so a material spent
// since plan fails the whole craft with domain.ErrInsufficientMaterial.
func (s *Session) commit(ctx context.Context, p *settlement, tx *domain.Transaction) ([]domain.Product, error) {
	items := make([]domain.Item, 0, len(tx.Results))
	quantities := make([]int, 0, len(tx.Results))
	for _, r := range tx.Results {
		if r.Quantity <= 0 {
			continue
		}
		item := r.Item.Clone()
		if err := s.svc.quantity.SetQuantity(item, r.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgCreateProducts, err)
		}
		items = append(items, *item)
		quantities = append(quantities, r.Quantity)
	}

	dbtx, err := s.svc.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, dbtx)

	for _, c := range p.consumes {
		if _, err := dbtx.ConsumeItem(ctx, c.uuid, c.amount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConsumeMaterial, err)
		}
	}

	created, err := dbtx.CreateItems(ctx, p.owner, items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateProducts, err)
	}
	if err := dbtx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	products := make([]domain.Product, len(created))
	for i := range created {
		products[i] = domain.Product{Item: &created[i], Quantity: quantities[i]}
	}
	return products, nil
}
