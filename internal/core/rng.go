package core

import "math/rand/v2"

// RNG wraps a PCG-backed math/rand/v2 generator that can be reseeded in place,
// so components holding the same *RNG follow a new seed together.
type RNG struct {
	pcg *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	pcg := rand.NewPCG(uint64(seed), 0)
	return &RNG{pcg: pcg, r: rand.New(pcg)}
}

// NewEntropyRNG creates an RNG seeded from the runtime's random source.
func NewEntropyRNG() *RNG {
	return NewRNG(rand.Int64())
}

// Seed restarts the sequence from seed.
func (r *RNG) Seed(seed int64) {
	r.pcg.Seed(uint64(seed), 0)
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Int64 returns a uniform non-negative int64.
func (r *RNG) Int64() int64 { return r.r.Int64() }
