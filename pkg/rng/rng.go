// Package rng is a thin convenience wrapper around math/rand/v2 for
// deterministic seeding.
package rng

import "math/rand/v2"

// RNG is a seeded PCG source.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. p <= 0 never fires, p >= 1 always does.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Intn returns a random int in [0, n). Non-positive n yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Jitter returns v shifted by a random amount in [-spread, spread], clamped
// to a byte.
func (r *RNG) Jitter(v uint8, spread int) uint8 {
	if spread <= 0 {
		return v
	}
	n := int(v) + r.r.IntN(2*spread+1) - spread
	return uint8(min(max(n, 0), 255))
}
