package island

import (
	"math"

	"islandgen/internal/core"
	"islandgen/internal/noise"
)

// Zone growth constants: noise period of a third of the grid and a score
// offset of 0.75 at the origin.
const (
	zoneNoiseDivisor = 3
	zoneBias         = 0.75
)

// ZoneParams drives city-center placement.
type ZoneParams struct {
	// AreaCount is the number of growth passes, one random origin each.
	AreaCount       int
	RadiusThreshold float64
}

// Validate rejects a negative pass count or an unusable threshold.
func (p ZoneParams) Validate() error {
	if p.AreaCount < 0 {
		return invalidf("area count %d must not be negative", p.AreaCount)
	}
	if !validScore(p.RadiusThreshold) {
		return invalidf("radius threshold %v outside [-%v, %v]", p.RadiusThreshold, MaxScore, MaxScore)
	}
	return nil
}

// placeCenters grows noise-perturbed disks of center tiles around random
// interior origins. Only grass converts; roads are left in place.
func placeCenters(m *Model, src noise.Source, rng *core.RNG, p ZoneParams) int {
	m.rebuildIndex()
	for _, pt := range m.island {
		if m.at(pt) != Road {
			m.set(pt, Grass)
		}
	}

	src.Seed()
	if len(m.island) == 0 {
		return 0
	}

	size := float64(m.size)
	half := size / 2
	period := size / zoneNoiseDivisor
	placed := 0
	for i := 0; i < p.AreaCount; i++ {
		origin := m.island[rng.IntN(len(m.island))]
		for _, cell := range m.island {
			distance := math.Hypot(float64(cell.X-origin.X), float64(cell.Y-origin.Y))
			n := src.Sample(float64(cell.X)/period, float64(cell.Y)/period)
			score := n + (zoneBias - distance/half)
			if m.at(cell) == Grass && score > p.RadiusThreshold {
				m.set(cell, Center)
				placed++
			}
		}
	}
	m.rebuildIndex()
	return placed
}
