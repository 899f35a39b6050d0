package noise

import "github.com/aquilax/go-perlin"

// Perlin parameters giving smooth, terrain-like fields.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Perlin samples github.com/aquilax/go-perlin.
type Perlin struct {
	seeds Seeder
	seed  int64
	p     *perlin.Perlin
}

// NewPerlin returns an unseeded Perlin source; the first Sample seeds it.
func NewPerlin(seeds Seeder) *Perlin {
	return &Perlin{seeds: seeds}
}

// Seed draws a new seed and rebuilds the permutation tables.
func (s *Perlin) Seed() {
	s.seed = s.seeds.Int64()
	s.p = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, s.seed)
}

// Sample returns the noise value at (u, v).
func (s *Perlin) Sample(u, v float64) float64 {
	if s.p == nil {
		s.Seed()
	}
	return clamp(s.p.Noise2D(u, v))
}

// CurrentSeed reports the seed of the active epoch.
func (s *Perlin) CurrentSeed() int64 { return s.seed }
