package island

import (
	"strings"
	"testing"

	"islandgen/internal/core"
	"islandgen/internal/noise"
)

func newTestWorld(t *testing.T, seed int64, opts ...Option) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	opts = append([]Option{WithRNG(core.NewRNG(seed))}, opts...)
	w, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

// flatWorld uses a constant noise field so tile scores are exact.
func flatWorld(t *testing.T, value float64) (*World, *noise.Constant) {
	t.Helper()
	src := noise.NewConstant(value)
	return newTestWorld(t, 1, WithNoise(func(noise.Seeder) noise.Source { return src })), src
}

// modelFromRows builds a model from rows of Glyphs characters.
func modelFromRows(t *testing.T, rows ...string) *Model {
	t.Helper()
	m := newModel(len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has width %d, want %d", y, len(row), len(rows))
		}
		for x, ch := range row {
			idx := strings.IndexRune(Glyphs, ch)
			if idx < 0 {
				t.Fatalf("unknown glyph %q", ch)
			}
			m.grid.Set(x, y, uint8(idx))
		}
	}
	m.rebuildIndex()
	return m
}

func pointSet(ps []core.Point) map[core.Point]bool {
	out := make(map[core.Point]bool, len(ps))
	for _, p := range ps {
		out[p] = true
	}
	return out
}

func hasTileNeighbor8(tiles []Tile, size int, p core.Point, want Tile) bool {
	for _, d := range core.Moore {
		n := p.Add(d)
		if n.X < 0 || n.Y < 0 || n.X >= size || n.Y >= size {
			continue
		}
		if tiles[n.Y*size+n.X] == want {
			return true
		}
	}
	return false
}

func roadNeighbours(tiles []Tile, size int, p core.Point) int {
	count := 0
	for _, d := range core.VonNeumann {
		n := p.Add(d)
		if n.X < 0 || n.Y < 0 || n.X >= size || n.Y >= size {
			continue
		}
		if tiles[n.Y*size+n.X] == Road {
			count++
		}
	}
	return count
}
