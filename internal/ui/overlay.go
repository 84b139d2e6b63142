//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mad-rd/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type concentrationProvider interface {
	ConcentrationB() []float64
}

var (
	concentrationTint = color.RGBA{R: 255, G: 96, B: 48, A: 255}
	cursorColor       = color.RGBA{R: 120, G: 220, B: 255, A: 200}
)

// Overlay draws optional visuals on top of the base field: a tint of the B
// concentration and the brush outline under the cursor.
type Overlay struct {
	sim     core.Sim
	scale   int
	showB   bool
	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the concentration layer on B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showB = !o.showB
	}
}

// Draw renders the enabled layers. brush is the paint radius in cells; a
// negative value hides the cursor.
func (o *Overlay) Draw(screen *ebiten.Image, brush int) {
	if o == nil || o.sim == nil {
		return
	}
	if o.showB {
		o.drawConcentration(screen)
	}
	if brush >= 0 {
		o.drawCursor(screen, brush)
	}
}

func (o *Overlay) drawConcentration(screen *ebiten.Image) {
	provider, ok := o.sim.(concentrationProvider)
	if !ok {
		return
	}
	mask := provider.ConcentrationB()
	size := o.sim.Size()
	if len(mask) != size.W*size.H {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, size.W*size.H*4)
	}
	fillMaskRGBA(o.maskBuf, mask, concentrationTint)
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawCursor(screen *ebiten.Image, brush int) {
	mx, my := ebiten.CursorPosition()
	size := o.sim.Size()
	if mx < 0 || my < 0 || mx >= size.W*o.scale || my >= size.H*o.scale {
		return
	}
	radius := float64(brush*o.scale) + float64(o.scale)/2
	segments := int(math.Max(16, radius))
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := float64(mx) + radius*math.Cos(theta)
		y := float64(my) + radius*math.Sin(theta)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(cursorColor)
		screen.DrawImage(o.pixel, op)
	}
}
