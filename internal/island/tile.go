package island

// Tile classifies a single grid cell.
type Tile uint8

const (
	Sea Tile = iota
	Grass
	Sand
	Road
	Center
)

var tileNames = [...]string{"sea", "grass", "sand", "road", "center"}

func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}

// IsLand reports whether the tile is anything but sea.
func (t Tile) IsLand() bool { return t != Sea }

// IsInterior reports whether the tile belongs to interior land: grass and
// anything later built on top of it.
func (t Tile) IsInterior() bool {
	return t == Grass || t == Road || t == Center
}
