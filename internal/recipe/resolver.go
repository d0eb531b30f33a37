// Package recipe selects the recipe a craft resolves to.
package recipe

import (
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/matching"
	"github.com/osse101/CraftPanel_Go/internal/weighted"
)

// Candidate is a recipe whose ingredients are satisfied, with its score.
type Candidate struct {
	Recipe *domain.Recipe
	Score  float64
}

// Resolver picks one recipe among the best scoring candidates.
type Resolver struct {
	rnd func() float64
}

// NewResolver creates a Resolver drawing tie-breaks from rnd, which must
// return values in [0, 1).
func NewResolver(rnd func() float64) *Resolver {
	return &Resolver{rnd: rnd}
}

// Candidates returns every recipe satisfied by the aggregates, in input order.
func Candidates(recipes []*domain.Recipe, elements, materials []domain.Element) []Candidate {
	var out []Candidate
	for _, r := range recipes {
		m := matching.Ingredients(elements, materials, r.Ingredients)
		if !m.Satisfied {
			continue
		}
		out = append(out, Candidate{Recipe: r, Score: m.Score})
	}
	return out
}

// Best keeps the candidates sharing the maximum score.
func Best(cands []Candidate) []Candidate {
	if len(cands) == 0 {
		return nil
	}
	top := cands[0].Score
	for _, c := range cands[1:] {
		if c.Score > top {
			top = c.Score
		}
	}
	var out []Candidate
	for _, c := range cands {
		if c.Score == top {
			out = append(out, c)
		}
	}
	return out
}

// SelectWeighted returns the single candidate, or draws one by weight when
// several remain.
func (r *Resolver) SelectWeighted(cands []Candidate) *domain.Recipe {
	switch len(cands) {
	case 0:
		return nil
	case 1:
		return cands[0].Recipe
	}
	weights := make([]float64, len(cands))
	for i, c := range cands {
		weights[i] = c.Recipe.EffectiveWeight()
	}
	idx := weighted.Pick(weights, r.rnd())
	if idx < 0 {
		return cands[0].Recipe
	}
	return cands[idx].Recipe
}

// Resolve runs candidate collection, scoring, tier filtering and selection.
// A nil recipe means nothing matched, which is a valid outcome.
func (r *Resolver) Resolve(recipes []*domain.Recipe, elements, materials []domain.Element) *domain.Recipe {
	return r.SelectWeighted(Best(Candidates(recipes, elements, materials)))
}
