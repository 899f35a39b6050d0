package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer drives: a grid of byte-sized cells that can
// be rebuilt from a seed and advanced one step at a time.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
