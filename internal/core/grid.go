package core

import "fmt"

// Point addresses a single cell of a grid.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Moore lists the eight neighbour offsets (orthogonal and diagonal).
var Moore = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// VonNeumann lists the four orthogonal neighbour offsets.
var VonNeumann = [4]Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// ByteGrid stores a bounded 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y). Out-of-range coordinates are a
// programming error and panic.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.mustIndex(x, y)] }

// Set stores v at (x, y). Out-of-range coordinates panic.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[g.mustIndex(x, y)] = v }

// Point converts a linear index back into coordinates.
func (g *ByteGrid) Point(idx int) Point { return Point{X: idx % g.W, Y: idx / g.W} }

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a copy of the cell values.
func (g *ByteGrid) Clone() []uint8 {
	return append([]uint8(nil), g.data...)
}

func (g *ByteGrid) mustIndex(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return g.Index(x, y)
}
