//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"islandgen/internal/core"
	"islandgen/internal/render"
)

// IndexProvider exposes the index sets the overlay can highlight.
type IndexProvider interface {
	core.Sim
	Island() []core.Point
	Sand() []core.Point
	Roads() []core.Point
}

type overlayLayer struct {
	name string
	key  ebiten.Key
	tint color.RGBA
	on   bool
	pts  func(IndexProvider) []core.Point
}

// Overlay tints the cells of the island, sand and road index sets on top of
// the map. Keys 1, 2 and 3 toggle the layers.
type Overlay struct {
	src     IndexProvider
	scale   int
	painter *render.GridPainter
	layers  []overlayLayer
}

// NewOverlay constructs an overlay for src drawn at scale.
func NewOverlay(src IndexProvider, scale int) *Overlay {
	return &Overlay{
		src:   src,
		scale: scale,
		layers: []overlayLayer{
			{name: "island", key: ebiten.KeyDigit1, tint: color.RGBA{R: 40, G: 90, B: 200, A: 110}, pts: IndexProvider.Island},
			{name: "sand", key: ebiten.KeyDigit2, tint: color.RGBA{R: 230, G: 120, B: 30, A: 140}, pts: IndexProvider.Sand},
			{name: "roads", key: ebiten.KeyDigit3, tint: color.RGBA{R: 220, G: 30, B: 60, A: 160}, pts: IndexProvider.Roads},
		},
	}
}

// Update toggles layers from the keyboard.
func (o *Overlay) Update() {
	for i := range o.layers {
		if inpututil.IsKeyJustPressed(o.layers[i].key) {
			o.layers[i].on = !o.layers[i].on
		}
	}
}

// Active lists the names of the visible layers.
func (o *Overlay) Active() []string {
	var names []string
	for _, l := range o.layers {
		if l.on {
			names = append(names, l.name)
		}
	}
	return names
}

// Draw renders the visible layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.src.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
	} else if w, h := o.painter.Size(); w != size.W || h != size.H {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	y := 14
	for _, l := range o.layers {
		if !l.on {
			continue
		}
		o.painter.BlitPoints(screen, l.pts(o.src), l.tint, o.scale)
		text.Draw(screen, l.name, basicfont.Face7x13, 6, y, color.White)
		y += 14
	}
}
