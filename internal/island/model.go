package island

import "islandgen/internal/core"

// Neighbor pairs a neighbouring coordinate with its tile.
type Neighbor struct {
	core.Point
	Tile Tile
}

// Model is the shared grid plus the derived index sets. Island holds interior
// land (grass, road, center), Sand holds coastal land and Roads holds road
// tiles. The sets are rebuilt from the grid with a full scan whenever a phase
// starts or finishes; they are never patched incrementally.
type Model struct {
	grid   *core.ByteGrid
	size   int
	island []core.Point
	sand   []core.Point
	roads  []core.Point
}

func newModel(size int) *Model {
	return &Model{grid: core.NewByteGrid(size, size), size: size}
}

// Size returns the side length of the square grid.
func (m *Model) Size() int { return m.size }

// TileAt returns the tile at (x, y); ok is false outside the grid.
func (m *Model) TileAt(x, y int) (Tile, bool) {
	if !m.grid.InBounds(x, y) {
		return Sea, false
	}
	return Tile(m.grid.At(x, y)), true
}

// Neighbors8 lists the in-grid Moore neighbours of (x, y).
func (m *Model) Neighbors8(x, y int) []Neighbor {
	out := make([]Neighbor, 0, len(core.Moore))
	for _, d := range core.Moore {
		nx, ny := x+d.X, y+d.Y
		if !m.grid.InBounds(nx, ny) {
			continue
		}
		out = append(out, Neighbor{Point: core.Point{X: nx, Y: ny}, Tile: Tile(m.grid.At(nx, ny))})
	}
	return out
}

func (m *Model) at(p core.Point) Tile { return Tile(m.grid.At(p.X, p.Y)) }

func (m *Model) set(p core.Point, t Tile) { m.grid.Set(p.X, p.Y, uint8(t)) }

// hasNeighbor8 reports whether any in-grid Moore neighbour of p is t.
func (m *Model) hasNeighbor8(p core.Point, t Tile) bool {
	for _, d := range core.Moore {
		n := p.Add(d)
		if m.grid.InBounds(n.X, n.Y) && m.at(n) == t {
			return true
		}
	}
	return false
}

// roadNeighbors4 counts orthogonal road neighbours of p.
func (m *Model) roadNeighbors4(p core.Point) int {
	count := 0
	for _, d := range core.VonNeumann {
		n := p.Add(d)
		if m.grid.InBounds(n.X, n.Y) && m.at(n) == Road {
			count++
		}
	}
	return count
}

// interior reports whether p lies inside the one-tile frame, i.e. in
// [1, size-2] on both axes.
func (m *Model) interior(p core.Point) bool {
	return p.X >= 1 && p.X <= m.size-2 && p.Y >= 1 && p.Y <= m.size-2
}

func (m *Model) rebuildIndex() {
	m.island = m.island[:0]
	m.sand = m.sand[:0]
	m.roads = m.roads[:0]
	cells := m.grid.Cells()
	for i, v := range cells {
		t := Tile(v)
		switch {
		case t == Sand:
			m.sand = append(m.sand, m.grid.Point(i))
		case t.IsInterior():
			p := m.grid.Point(i)
			m.island = append(m.island, p)
			if t == Road {
				m.roads = append(m.roads, p)
			}
		}
	}
}

func (m *Model) tiles() []Tile {
	cells := m.grid.Cells()
	out := make([]Tile, len(cells))
	for i, v := range cells {
		out[i] = Tile(v)
	}
	return out
}

func clonePoints(ps []core.Point) []core.Point {
	return append([]core.Point(nil), ps...)
}
