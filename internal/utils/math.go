package utils

import (
	crand "crypto/rand"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"sync"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SecureRandomInt returns a random integer between min and max (inclusive) using crypto/rand
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// NewRandomSource returns a goroutine-safe float source in [0, 1). A zero
// seed draws one from crypto/rand.
func NewRandomSource(seed int64) (func() float64, error) {
	if seed == 0 {
		n, err := SecureRandomInt(1, math.MaxInt32)
		if err != nil {
			return nil, fmt.Errorf("failed to draw random seed: %w", err)
		}
		seed = int64(n)
	}
	var mu sync.Mutex
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}, nil
}
