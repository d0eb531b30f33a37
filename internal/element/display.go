package element

import (
	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// adjust applies display configs to the raw aggregate. Ids covered by a
// config collapse into one entry keyed by the config's first id; ids no
// config mentions pass through unchanged.
func adjust(raw []domain.Element, configs []domain.ElementDisplayConfig) ([]domain.Element, []domain.ShownElement) {
	var elements []domain.Element
	var shown []domain.ShownElement
	claimed := make(map[string]bool)

	for _, cfg := range configs {
		if len(cfg.IDs) == 0 {
			continue
		}
		var members []domain.Element
		for _, e := range raw {
			if cfg.Has(e.ID) && !claimed[e.ID] {
				members = append(members, e)
			}
		}
		for _, id := range cfg.IDs {
			claimed[id] = true
		}

		entry := collapse(cfg, members, raw)
		if entry.Num != 0 {
			elements = append(elements, entry)
		}
		if isVisible(cfg.Visible, entry.Num) {
			shown = append(shown, domain.ShownElement{
				Element: entry,
				Label:   labelFor(cfg, entry),
				Shape:   cfg.Shape,
				Size:    cfg.Size,
			})
		}
	}

	for _, e := range raw {
		if claimed[e.ID] {
			continue
		}
		if e.Num != 0 {
			elements = append(elements, e)
		}
		shown = append(shown, domain.ShownElement{Element: e, Label: e.Name})
	}

	sortDescending(elements)
	return elements, shown
}

// collapse reduces the members of one group to a single entry.
func collapse(cfg domain.ElementDisplayConfig, members, raw []domain.Element) domain.Element {
	entry := domain.Element{ID: cfg.IDs[0]}
	if len(members) == 0 {
		entry.Color = cfg.Color
		return entry
	}

	maxE, minE := members[0], members[0]
	sum := 0.0
	for _, m := range members {
		sum += m.Num
		if m.Num > maxE.Num {
			maxE = m
		}
		if m.Num < minE.Num {
			minE = m
		}
	}

	rep := maxE
	if cfg.MultiShow == domain.MultiShowMin {
		rep = minE
	}
	entry.Name = rep.Name
	entry.Img = rep.Img
	entry.Class = rep.Class
	entry.Color = rep.Color
	entry.Weight = rep.Weight
	if cfg.Color != "" {
		entry.Color = cfg.Color
	}

	value := groupValue(cfg.MultiValue, maxE.Num, minE.Num, sum)
	if cfg.UseMin && value < cfg.Min {
		value = cfg.Min
	}
	if cfg.UseMax && value > cfg.Max {
		value = cfg.Max
	}
	if value != 0 {
		for _, id := range cfg.PlusElements {
			value += Lookup(raw, id)
		}
		for _, id := range cfg.MinusElements {
			value -= Lookup(raw, id)
		}
	}
	entry.Num = value
	return entry
}

func groupValue(mode domain.MultiValue, maxV, minV, sum float64) float64 {
	switch mode {
	case domain.MultiValueMin:
		return minV
	case domain.MultiValueMaxPlusOthers, domain.MultiValueMinPlusOthers, domain.MultiValueSum:
		return sum
	case domain.MultiValueMaxMinusOthers:
		return maxV - (sum - maxV)
	case domain.MultiValueMinMinusOthers:
		return minV - (sum - minV)
	default:
		return maxV
	}
}

func isVisible(policy domain.Visibility, value float64) bool {
	switch policy {
	case domain.VisibleNever:
		return false
	case domain.VisiblePositive:
		return value > 0
	case domain.VisibleNonPositive:
		return value <= 0
	default:
		return true
	}
}

func labelFor(cfg domain.ElementDisplayConfig, e domain.Element) string {
	if cfg.Value != "" {
		return cfg.Value
	}
	return e.Name
}
