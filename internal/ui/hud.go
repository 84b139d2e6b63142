//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"mad-rd/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControl
	panelOffsetX int
	title        string
	status       Status

	pixel *ebiten.Image
}

type hudControl struct {
	controlState

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControl, len(controls))
		for i, ctrl := range controls {
			h.controls[i].controlState = controlState{control: ctrl, text: "--"}
		}
		h.layoutControls()
	}
	return h
}

// Update refreshes the cached snapshot and handles button clicks. It reports
// whether the click landed on the panel so the caller can skip painting.
func (h *HUD) Update(panelOffsetX int, status Status) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.status = status
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(h.snapshot)
	}
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		c := &h.controls[i]
		if !c.hasValue {
			continue
		}
		switch {
		case pointInRect(px, my, c.minusRect):
			h.adjust(c, -1)
		case pointInRect(px, my, c.plusRect):
			h.adjust(c, 1)
		}
	}
	return true
}

func (h *HUD) adjust(c *hudControl, direction int) {
	target, changed := nextValue(c.control, c.value, direction)
	if !changed {
		return
	}
	if apply(h.sim, c.control, target) {
		c.value = target
		c.text = formatValue(c.control, target)
	}
}

var (
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, headerColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, mutedColor)
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, y, labelColor)
		valueColor := labelColor
		if !c.hasValue {
			valueColor = mutedColor
		}
		valueX := c.minusRect.Min.X - buttonGap - text.BoundString(face, c.text).Dx()
		text.Draw(h.panel, c.text, face, valueX, y, valueColor)

		_, canDec := nextValue(c.control, c.value, -1)
		_, canInc := nextValue(c.control, c.value, 1)
		h.drawButton(c.minusRect, "-", c.hasValue && canDec)
		h.drawButton(c.plusRect, "+", c.hasValue && canInc)
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	state := "running"
	if h.status.Paused {
		state = "paused"
	}
	lines := []string{
		"preset  " + h.status.Preset,
		"palette " + h.status.Palette,
		fmt.Sprintf("steps   %d", h.status.Steps),
		fmt.Sprintf("brush   %d", h.status.Brush),
		state,
	}
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += statusLineHeight
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

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding     = 12
	lineHeight       = 36
	buttonSize       = 24
	buttonGap        = 6
	headerBaseline   = 18
	labelBaseline    = 24
	infoSpacing      = 36
	statusLineHeight = 16
	controlsTop      = panelPadding + headerBaseline + 14
)
