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

// UniformInt returns a random int in [low, high). It returns low when the
// range is empty.
func (r *RNG) UniformInt(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.r.IntN(high-low)
}
