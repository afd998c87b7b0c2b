package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillBinary fills the buffer with 1 values at the given density and 0
// elsewhere.
func FillBinary(r *RNG, buf []uint8, density float64) {
	for i := range buf {
		if r.Chance(density) {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
