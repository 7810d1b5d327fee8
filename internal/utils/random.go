package utils

import "math/rand"

// RandomIndex returns a uniformly random index in [0, n). n must be positive.
func RandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// SumInts adds up values
func SumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
