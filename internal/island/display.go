package island

import "image/color"

var islandPalette = []color.RGBA{
	Sea:    {R: 0x6a, G: 0xc0, B: 0xbd, A: 0xff},
	Grass:  {R: 0xa9, G: 0xf0, B: 0x5f, A: 0xff},
	Sand:   {R: 0xfc, G: 0xeb, B: 0xb6, A: 0xff},
	Road:   {R: 0x4e, G: 0x5e, B: 0x5e, A: 0xff},
	Center: {R: 0xe0, G: 0x7a, B: 0x5f, A: 0xff},
}

// Glyphs maps each Tile value to the character used by text renderings.
const Glyphs = "~.:#@"

// Palette exposes the colors used for rendering, indexed by Tile value.
func (w *World) Palette() []color.RGBA {
	return islandPalette
}

// Color returns the render color of t.
func (t Tile) Color() color.RGBA {
	if int(t) < len(islandPalette) {
		return islandPalette[t]
	}
	return color.RGBA{A: 0xff}
}
