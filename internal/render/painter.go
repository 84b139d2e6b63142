//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads an RGBA field image to the GPU and draws it scaled.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette *Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p *Palette) *GridPainter {
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: p,
	}
}

// SetPalette switches the color mapping used by Blit.
func (gp *GridPainter) SetPalette(p *Palette) { gp.palette = p }

// Palette returns the active palette.
func (gp *GridPainter) Palette() *Palette { return gp.palette }

// Blit colorizes the grayscale buffer, uploads it and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, gray []byte, scale int) {
	if len(gray) != len(gp.buf) {
		return
	}
	Colorize(gp.buf, gray, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
