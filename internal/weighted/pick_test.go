package weighted

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick_Boundaries(t *testing.T) {
	weights := []float64{100, 100, 200}

	assert.Equal(t, 0, Pick(weights, 0))
	assert.Equal(t, 0, Pick(weights, 0.2499))
	assert.Equal(t, 1, Pick(weights, 0.25))
	assert.Equal(t, 1, Pick(weights, 0.4999))
	assert.Equal(t, 2, Pick(weights, 0.5))
	assert.Equal(t, 2, Pick(weights, 0.9999))
}

func TestPick_SkipsZeroWeights(t *testing.T) {
	weights := []float64{0, 5, 0}
	for _, r := range []float64{0, 0.3, 0.99} {
		assert.Equal(t, 1, Pick(weights, r))
	}
	assert.Equal(t, -1, Pick([]float64{0, 0}, 0.5))
	assert.Equal(t, -1, Pick(nil, 0.5))
}

func TestPick_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	weights := []float64{100, 100, 200}
	counts := make([]int, 3)
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[Pick(weights, rng.Float64())]++
	}
	assert.InDelta(t, 0.5, float64(counts[2])/trials, 0.02)
	assert.InDelta(t, 0.25, float64(counts[0])/trials, 0.02)
}
