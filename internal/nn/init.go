package nn

import (
	"math/rand"
)

// Uniform draws a value uniformly from [lo, hi).
//
// Parameters:
//   - rng: Source of randomness; pass a seeded generator for reproducible runs
//   - lo, hi: Bounds of the interval
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// NewRand returns a generator seeded for reproducible initialization.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}
