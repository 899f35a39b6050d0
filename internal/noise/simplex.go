package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Simplex samples github.com/ojrac/opensimplex-go.
type Simplex struct {
	seeds Seeder
	seed  int64
	n     opensimplex.Noise
}

// NewSimplex returns an unseeded OpenSimplex source.
func NewSimplex(seeds Seeder) *Simplex {
	return &Simplex{seeds: seeds}
}

// Seed draws a new seed.
func (s *Simplex) Seed() {
	s.seed = s.seeds.Int64()
	s.n = opensimplex.New(s.seed)
}

// Sample returns the noise value at (u, v).
func (s *Simplex) Sample(u, v float64) float64 {
	if s.n == nil {
		s.Seed()
	}
	return clamp(s.n.Eval2(u, v))
}

// CurrentSeed reports the seed of the active epoch.
func (s *Simplex) CurrentSeed() int64 { return s.seed }
