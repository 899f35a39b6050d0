package render

import (
	"image/color"

	"islandgen/internal/core"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette take its last colour; an empty palette clears
// the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillPointsRGBA clears buf and paints tint at every in-bounds point of a
// w*h grid.
func fillPointsRGBA(buf []byte, w, h int, pts []core.Point, tint color.RGBA) {
	clear(buf[:4*w*h])
	for _, p := range pts {
		if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
			continue
		}
		base := (p.Y*w + p.X) * 4
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = tint.A
	}
}
