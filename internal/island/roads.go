package island

import "islandgen/internal/core"

// RoadParams drives lattice carving and pruning.
type RoadParams struct {
	// Spacing is the lattice period: tiles with x or y divisible by it are
	// road candidates.
	Spacing int
	// PruneCount is the number of random erosion passes.
	PruneCount int
}

// Validate rejects a non-positive spacing or negative prune count.
func (p RoadParams) Validate() error {
	if p.Spacing < 1 {
		return invalidf("road spacing %d must be at least 1", p.Spacing)
	}
	if p.PruneCount < 0 {
		return invalidf("prune count %d must not be negative", p.PruneCount)
	}
	return nil
}

// RoadSnapshot is a read-only copy of the model after road carving.
type RoadSnapshot struct {
	Size  int
	Tiles []Tile
	Roads []core.Point
}

// At returns the tile at (x, y) of the snapshot.
func (s RoadSnapshot) At(x, y int) Tile { return s.Tiles[y*s.Size+x] }

type roadReport struct {
	carved int
	pruned int
	stubs  int
}

// carveRoads rebuilds the road network from the interior-land baseline.
func carveRoads(m *Model, rng *core.RNG, p RoadParams) roadReport {
	var rep roadReport
	m.rebuildIndex()

	for _, pt := range m.island {
		if t := m.at(pt); t == Road || t == Center {
			m.set(pt, Grass)
		}
	}

	for _, pt := range m.island {
		if pt.X%p.Spacing != 0 && pt.Y%p.Spacing != 0 {
			continue
		}
		if m.hasNeighbor8(pt, Sand) {
			continue
		}
		m.set(pt, Road)
		rep.carved++
	}
	m.rebuildIndex()

	if p.PruneCount > 0 && len(m.roads) > 0 {
		live := newRoadSet(m)
		for i := 0; i < p.PruneCount && live.len() > 0; i++ {
			start := live.pick(rng)
			rep.pruned += m.pruneFrom(start, live)
		}
	}

	for _, pt := range m.roads {
		if m.at(pt) == Road && m.roadNeighbors4(pt) == 0 {
			m.set(pt, Grass)
			rep.stubs++
		}
	}
	m.rebuildIndex()
	return rep
}

// pruneFrom removes start and then erodes outward: an orthogonal neighbour
// inside the one-tile frame that is a road with at most one road neighbour
// left is removed too, and its own neighbours are visited in turn. Each tile is
// pushed at most once because it stops being a road when pushed, so the stack
// never grows past the road count.
func (m *Model) pruneFrom(start core.Point, live *roadSet) int {
	m.set(start, Grass)
	live.remove(m, start)
	removed := 1

	stack := []core.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range core.VonNeumann {
			n := p.Add(d)
			if !m.interior(n) || m.at(n) != Road {
				continue
			}
			if m.roadNeighbors4(n) > 1 {
				continue
			}
			m.set(n, Grass)
			live.remove(m, n)
			removed++
			stack = append(stack, n)
		}
	}
	return removed
}

// roadSet supports uniform picks and O(1) removal while pruning.
type roadSet struct {
	points []core.Point
	pos    []int32
}

func newRoadSet(m *Model) *roadSet {
	s := &roadSet{
		points: clonePoints(m.roads),
		pos:    make([]int32, m.size*m.size),
	}
	for i := range s.pos {
		s.pos[i] = -1
	}
	for i, p := range s.points {
		s.pos[m.grid.Index(p.X, p.Y)] = int32(i)
	}
	return s
}

func (s *roadSet) len() int { return len(s.points) }

func (s *roadSet) pick(rng *core.RNG) core.Point {
	return s.points[rng.IntN(len(s.points))]
}

func (s *roadSet) remove(m *Model, p core.Point) {
	idx := m.grid.Index(p.X, p.Y)
	i := s.pos[idx]
	if i < 0 {
		return
	}
	last := len(s.points) - 1
	moved := s.points[last]
	s.points[i] = moved
	s.pos[m.grid.Index(moved.X, moved.Y)] = i
	s.points = s.points[:last]
	s.pos[idx] = -1
}
