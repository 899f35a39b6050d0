package island

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Stats counts tiles by type plus the sizes of the derived index sets.
type Stats struct {
	Size   int
	Sea    int
	Grass  int
	Sand   int
	Road   int
	Center int
	Island int
	Roads  int
}

// Land returns the number of non-sea tiles.
func (s Stats) Land() int { return s.Grass + s.Sand + s.Road + s.Center }

// LandShare returns the fraction of the grid that is land.
func (s Stats) LandShare() float64 {
	total := s.Size * s.Size
	if total == 0 {
		return 0
	}
	return float64(s.Land()) / float64(total)
}

// Lines formats the counts for the HUD and the command-line report.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("size    %dx%d", s.Size, s.Size),
		fmt.Sprintf("land    %d (%.1f%%)", s.Land(), 100*s.LandShare()),
		fmt.Sprintf("grass   %d", s.Grass),
		fmt.Sprintf("sand    %d", s.Sand),
		fmt.Sprintf("road    %d", s.Road),
		fmt.Sprintf("center  %d", s.Center),
		fmt.Sprintf("sea     %d", s.Sea),
	}
}

// MarshalLogObject lets Stats be logged with zap.Object.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("size", s.Size)
	enc.AddInt("sea", s.Sea)
	enc.AddInt("grass", s.Grass)
	enc.AddInt("sand", s.Sand)
	enc.AddInt("road", s.Road)
	enc.AddInt("center", s.Center)
	enc.AddFloat64("land_share", s.LandShare())
	return nil
}

func (m *Model) stats() Stats {
	s := Stats{Size: m.size, Island: len(m.island), Roads: len(m.roads)}
	for _, v := range m.grid.Cells() {
		switch Tile(v) {
		case Sea:
			s.Sea++
		case Grass:
			s.Grass++
		case Sand:
			s.Sand++
		case Road:
			s.Road++
		case Center:
			s.Center++
		}
	}
	return s
}
