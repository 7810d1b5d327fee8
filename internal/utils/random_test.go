package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomIndex tests the random index generator
func TestRandomIndex(t *testing.T) {
	t.Run("returns value within range", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			result := RandomIndex(5)
			assert.GreaterOrEqual(t, result, 0)
			assert.Less(t, result, 5)
		}
	})

	t.Run("single element always zero", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, 0, RandomIndex(1))
		}
	})

	t.Run("non-positive n returns zero", func(t *testing.T) {
		assert.Equal(t, 0, RandomIndex(0))
		assert.Equal(t, 0, RandomIndex(-3))
	})

	t.Run("covers every index", func(t *testing.T) {
		// 1000 draws over 4 buckets; missing one is astronomically unlikely
		seen := make(map[int]bool)
		for i := 0; i < 1000; i++ {
			seen[RandomIndex(4)] = true
		}
		assert.Len(t, seen, 4)
	})
}

func TestSumInts(t *testing.T) {
	assert.Equal(t, 0, SumInts(nil))
	assert.Equal(t, 250, SumInts([]int{100, 50, 100}))
}
