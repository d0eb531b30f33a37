// Package weighted picks indices by relative probability mass.
package weighted

// Cumulative returns the running sums of weights. Non-positive weights
// contribute no mass.
func Cumulative(weights []float64) ([]float64, float64) {
	cumul := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		cumul[i] = total
	}
	return cumul, total
}

// Pick returns the index chosen by a roll in [0, 1): the draw is scaled to
// [0, total) and the first entry whose cumulative weight exceeds it wins.
// Pick returns -1 when there is no mass to choose from.
func Pick(weights []float64, rnd float64) int {
	cumul, total := Cumulative(weights)
	if total <= 0 {
		return -1
	}
	roll := rnd * total
	lo, hi := 0, len(cumul)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cumul[mid] <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
