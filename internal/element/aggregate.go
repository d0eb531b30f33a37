// Package element reduces slot contents into aggregated element and
// material quantities used for requirement matching.
package element

import (
	"sort"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// Result is the outcome of one aggregation pass.
type Result struct {
	// Raw holds per-id sums before display configs are applied.
	Raw []domain.Element
	// Elements is the set used for requirement matching.
	Elements []domain.Element
	// Materials counts placed units per item name.
	Materials []domain.Element
	// Shown is the display list honoring each group's visibility policy.
	Shown []domain.ShownElement
}

// Quantity returns the aggregated amount of id in Elements.
func (r Result) Quantity(id string) float64 {
	return Lookup(r.Elements, id)
}

// Empty reports whether nothing was aggregated.
func (r Result) Empty() bool {
	return len(r.Elements) == 0 && len(r.Materials) == 0
}

// Lookup returns the quantity of id in agg, or 0 when absent.
func Lookup(agg []domain.Element, id string) float64 {
	for _, e := range agg {
		if e.ID == id {
			return e.Num
		}
	}
	return 0
}

// Aggregate sums the elements and materials of every filled slot. Each unit
// of a placed item contributes its declared elements once.
func Aggregate(contents []domain.SlotContent, configs []domain.ElementDisplayConfig) Result {
	var res Result

	for _, c := range contents {
		if c.Item == nil {
			continue
		}
		qty := c.Quantity
		if qty <= 0 {
			qty = domain.DefaultPlacedQuantity
		}
		for _, e := range c.Item.Elements {
			res.Raw = addTo(res.Raw, e, e.Num*float64(qty))
		}
		res.Materials = addTo(res.Materials, domain.Element{
			ID:   c.Item.Name,
			Name: c.Item.Name,
			Img:  c.Item.Img,
		}, float64(qty))
	}

	sortDescending(res.Raw)
	sortDescending(res.Materials)

	if len(configs) == 0 {
		res.Elements = dropZero(res.Raw)
		res.Shown = showAll(res.Elements)
		return res
	}

	res.Elements, res.Shown = adjust(res.Raw, configs)
	return res
}

func addTo(agg []domain.Element, e domain.Element, num float64) []domain.Element {
	for i := range agg {
		if agg[i].ID == e.ID {
			agg[i].Num += num
			return agg
		}
	}
	e.Num = num
	return append(agg, e)
}

func sortDescending(agg []domain.Element) {
	sort.SliceStable(agg, func(i, j int) bool {
		if agg[i].Num != agg[j].Num {
			return agg[i].Num > agg[j].Num
		}
		return agg[i].ID < agg[j].ID
	})
}

func dropZero(agg []domain.Element) []domain.Element {
	out := make([]domain.Element, 0, len(agg))
	for _, e := range agg {
		if e.Num != 0 {
			out = append(out, e)
		}
	}
	return out
}

func showAll(agg []domain.Element) []domain.ShownElement {
	out := make([]domain.ShownElement, 0, len(agg))
	for _, e := range agg {
		out = append(out, domain.ShownElement{Element: e, Label: e.Name})
	}
	return out
}
