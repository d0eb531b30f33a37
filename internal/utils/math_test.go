package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomFloat(t *testing.T) {
	t.Run("returns value between 0 and 1", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			result := RandomFloat()
			assert.GreaterOrEqual(t, result, 0.0,
				"Should be >= 0")
			assert.LessOrEqual(t, result, 1.0,
				"Should be <= 1")
		}
	})

	t.Run("produces varied results", func(t *testing.T) {
		results := make([]float64, 100)
		allSame := true
		
		for i := 0; i < 100; i++ {
			results[i] = RandomFloat()
			if i > 0 && results[i] != results[0] {
				allSame = false
			}
		}
		
		assert.False(t, allSame,
			"Should produce different values, not all identical")
	})
}

func TestSecureRandomInt(t *testing.T) {
	for i := 0; i < 50; i++ {
		n, err := SecureRandomInt(3, 7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 7)
	}

	_, err := SecureRandomInt(5, 1)
	assert.Error(t, err)
}

func TestNewRandomSource(t *testing.T) {
	t.Run("same seed yields same sequence", func(t *testing.T) {
		a, err := NewRandomSource(42)
		require.NoError(t, err)
		b, err := NewRandomSource(42)
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			assert.Equal(t, a(), b())
		}
	})

	t.Run("zero seed is drawn from crypto source", func(t *testing.T) {
		rnd, err := NewRandomSource(0)
		require.NoError(t, err)
		v := rnd()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	})
}
