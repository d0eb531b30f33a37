// Package matching checks aggregated elements and materials against
// requirement lists and ranks the lists that are satisfied.
package matching

import (
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/element"
)

// Satisfied reports whether agg meets every requirement. Ids missing from
// agg count as zero. An empty list is always satisfied.
func Satisfied(agg []domain.Element, reqs []domain.ElementRequirement) bool {
	for _, r := range reqs {
		qty := element.Lookup(agg, r.ID)
		if r.UseMin && qty < r.Min {
			return false
		}
		if r.UseMax && qty > r.Max {
			return false
		}
	}
	return true
}

// Score ranks how closely agg fits reqs. Enforced minimums add to the
// score, max-only requirements subtract the amount aggregated above their
// maximum and every aggregate entry no requirement mentions costs
// UnrelatedEntryPenalty.
func Score(agg []domain.Element, reqs []domain.ElementRequirement) float64 {
	score := 0.0
	mentioned := make(map[string]bool, len(reqs))
	for _, r := range reqs {
		mentioned[r.ID] = true
		switch {
		case r.UseMin:
			score += r.Min * domain.MinBoundScoreFactor
		case r.UseMax:
			if excess := element.Lookup(agg, r.ID) - r.Max; excess > 0 {
				score -= excess
			}
		}
	}
	for _, e := range agg {
		if !mentioned[e.ID] {
			score -= domain.UnrelatedEntryPenalty
		}
	}
	return score
}

// ScoreOrMin is Score, except that an empty list scores MinScore.
func ScoreOrMin(agg []domain.Element, reqs []domain.ElementRequirement) float64 {
	if len(reqs) == 0 {
		return domain.MinScore
	}
	return Score(agg, reqs)
}

// PrimaryScore scores only the dominant element of agg against the
// requirements naming it.
func PrimaryScore(agg []domain.Element, reqs []domain.ElementRequirement) float64 {
	if len(agg) == 0 {
		return 0
	}
	top := agg[0]
	for _, e := range agg[1:] {
		if e.Num > top.Num {
			top = e
		}
	}
	var own []domain.ElementRequirement
	for _, r := range reqs {
		if r.ID == top.ID {
			own = append(own, r)
		}
	}
	return Score([]domain.Element{top}, own)
}

// Match is the outcome of checking one ingredient list.
type Match struct {
	Satisfied bool
	Score     float64
}

// Ingredients checks a mixed ingredient list, splitting it into element
// and material requirements.
func Ingredients(elements, materials []domain.Element, ingredients []domain.ElementRequirement) Match {
	elemReqs, matReqs := domain.SplitRequirements(ingredients)
	if !Satisfied(elements, elemReqs) || !Satisfied(materials, matReqs) {
		return Match{}
	}
	return Match{Satisfied: true, Score: RecipeScore(elements, materials, elemReqs, matReqs)}
}

// RecipeScore combines the element, primary element and material terms.
// A recipe with no requirements at all scores MinScore.
func RecipeScore(elements, materials []domain.Element, elemReqs, matReqs []domain.ElementRequirement) float64 {
	if len(elemReqs) == 0 && len(matReqs) == 0 {
		return domain.MinScore
	}
	return Score(elements, elemReqs)*domain.ElementScoreFactor +
		PrimaryScore(elements, elemReqs) +
		Score(materials, matReqs)*domain.MaterialScoreFactor
}
