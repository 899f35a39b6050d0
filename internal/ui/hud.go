//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"islandgen/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the map.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	info         []string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided generator and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the parameter snapshot, stores the info lines shown under
// the controls and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int, info []string) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.info = info
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := h.nextValue(state, direction)
	if !ok {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter.SetIntParameter(state.control.Key, int(target)) {
			state.intValue = int(target)
			state.floatValue = target
			state.value = strconv.Itoa(state.intValue)
		}
	case core.ParamTypeFloat:
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	}
}

// nextValue steps the control one notch in direction, clamped to its range.
// ok is false when the control cannot move that way.
func (h *HUD) nextValue(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	ctrl := state.control
	var current, step float64
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		current = float64(state.intValue)
		step = math.Max(math.Round(ctrl.Step), 1)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		current = state.floatValue
		step = ctrl.Step
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if math.Abs(target-current) < 1e-9 {
		return 0, false
	}
	return target, true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Island Controls", face, panelPadding, y, headerColor)

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)

		_, minusOK := h.nextValue(state, -1)
		_, plusOK := h.nextValue(state, 1)
		h.drawButton(state.minusRect, "-", minusOK)
		h.drawButton(state.plusRect, "+", plusOK)
	}

	y = controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, line := range h.info {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += infoLineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 21
	infoSpacing    = 20
	infoLineHeight = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
