package island

import (
	"math"

	"islandgen/internal/core"
	"islandgen/internal/noise"
)

// TerrainParams drives land/sea classification.
type TerrainParams struct {
	Size int
	// NoiseScale divides the grid into that many noise periods per side;
	// larger values give a more fragmented coastline.
	NoiseScale float64
	// RadialBias is the score offset at the grid center, decaying by one per
	// half grid width.
	RadialBias float64
	Threshold  float64
}

// Validate rejects parameters that would produce undefined sampling.
func (p TerrainParams) Validate() error {
	if p.Size < 1 || p.Size > MaxSize {
		return invalidf("size %d outside [1, %d]", p.Size, MaxSize)
	}
	if math.IsNaN(p.NoiseScale) || math.IsInf(p.NoiseScale, 0) || p.NoiseScale <= 0 {
		return invalidf("noise scale %v must be positive", p.NoiseScale)
	}
	if !validScore(p.RadialBias) {
		return invalidf("radial bias %v outside [-%v, %v]", p.RadialBias, MaxScore, MaxScore)
	}
	if !validScore(p.Threshold) {
		return invalidf("threshold %v outside [-%v, %v]", p.Threshold, MaxScore, MaxScore)
	}
	return nil
}

// GridSnapshot is a read-only copy of the model after terrain generation.
type GridSnapshot struct {
	Size   int
	Tiles  []Tile
	Island []core.Point
	Sand   []core.Point
}

// At returns the tile at (x, y) of the snapshot.
func (s GridSnapshot) At(x, y int) Tile { return s.Tiles[y*s.Size+x] }

// classifyTerrain fills a fresh model from the noise field, then moves every
// land tile touching sea (8-connectivity) onto the sand ring. Off-grid cells
// do not count as sea.
func classifyTerrain(src noise.Source, p TerrainParams) *Model {
	m := newModel(p.Size)
	size := float64(p.Size)
	half := size / 2
	period := size / p.NoiseScale

	src.Seed()
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			distance := math.Hypot(float64(x)-half, float64(y)-half)
			n := src.Sample(float64(x)/period, float64(y)/period)
			score := n + (p.RadialBias - distance/half)
			if score > p.Threshold {
				m.grid.Set(x, y, uint8(Grass))
			}
		}
	}
	m.rebuildIndex()

	for _, pt := range m.island {
		if m.hasNeighbor8(pt, Sea) {
			m.set(pt, Sand)
		}
	}
	m.rebuildIndex()
	return m
}
