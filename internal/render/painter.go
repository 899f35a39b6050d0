//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"islandgen/internal/core"
)

// GridPainter uploads palette-indexed cells into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit colours cells with palette and draws them scaled onto dst. Cells of the
// wrong length are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale)
}

// BlitPoints tints the listed cells and draws them over dst.
func (gp *GridPainter) BlitPoints(dst *ebiten.Image, pts []core.Point, tint color.RGBA, scale int) {
	fillPointsRGBA(gp.buf, gp.w, gp.h, pts, tint)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
