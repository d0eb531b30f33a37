package crafting

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

// accepts reports whether item passes the slot filter. Variants are OR'd
// and an empty filter accepts anything.
func (s *Session) accepts(ctx context.Context, slot *domain.Slot, item *domain.Item) bool {
	if len(slot.Accepts) == 0 {
		return true
	}
	for _, req := range slot.Accepts {
		if s.satisfies(ctx, req, slot, item) {
			return true
		}
	}
	return false
}

func (s *Session) satisfies(ctx context.Context, req domain.ItemRequirement, slot *domain.Slot, item *domain.Item) bool {
	switch req.Kind {
	case domain.ItemRequirementName:
		return item.Name == req.Value
	case domain.ItemRequirementType:
		return item.Type == req.Value
	case domain.ItemRequirementFolder:
		return item.Folder == req.Value
	case domain.ItemRequirementScript:
		args := script.Args{
			{Name: "item", Value: item},
			{Name: "slot", Value: slot},
			{Name: "actor", Value: s.actor},
			{Name: "panel", Value: s.panel},
		}
		res, _ := s.svc.invoker.Run(ctx, domain.ScriptSiteAccepts, req.Value, args)
		return script.Truthy(res)
	}
	return false
}
