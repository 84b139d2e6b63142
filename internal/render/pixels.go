package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LUT maps an 8-bit intensity to a display color.
type LUT [256]color.RGBA

// Palette is a named gradient sampled into a LUT.
type Palette struct {
	Name  string
	Stops []string
	lut   LUT
}

// LUT returns the sampled lookup table.
func (p *Palette) LUT() *LUT { return &p.lut }

// Gray reports whether the palette is the identity mapping.
func (p *Palette) Gray() bool { return p.Name == "gray" }

var palettes = []*Palette{
	newPalette("gray", "#000000", "#ffffff"),
	newPalette("inferno", "#000004", "#420a68", "#932667", "#dd513a", "#fca50a", "#fcffa4"),
	newPalette("ocean", "#03051a", "#0b3a6e", "#1f8a9e", "#8fe3cf", "#f2fff9"),
	newPalette("bone", "#000000", "#545474", "#a7c7c7", "#ffffff"),
}

// newPalette blends the hex stops in Lab space into a 256-entry table.
func newPalette(name string, stops ...string) *Palette {
	cols := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cols[i] = mustHex(s)
	}
	p := &Palette{Name: name, Stops: stops}
	segments := len(cols) - 1
	for i := 0; i < 256; i++ {
		t := float64(i) / 255 * float64(segments)
		seg := int(t)
		if seg >= segments {
			seg = segments - 1
		}
		c := cols[seg].BlendLab(cols[seg+1], t-float64(seg)).Clamped()
		r, g, b := c.RGB255()
		p.lut[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad palette stop %q: %v", s, err))
	}
	return c
}

// Palettes lists the built-in palettes.
func Palettes() []*Palette { return palettes }

// PaletteNames returns the palette names in display order.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// PaletteByName looks up a palette.
func PaletteByName(name string) (*Palette, error) {
	for _, p := range palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("render: unknown palette %q", name)
}

// Colorize maps the red channel of a grayscale RGBA buffer through the
// palette into dst. dst and src may alias. The gray palette copies src.
func Colorize(dst, src []byte, p *Palette) {
	if len(dst) == 0 || len(src) == 0 {
		return
	}
	if p == nil || p.Gray() {
		if &dst[0] != &src[0] {
			copy(dst, src)
		}
		return
	}
	for i := 0; i+3 < len(src); i += 4 {
		c := p.lut[src[i]]
		dst[i+0] = c.R
		dst[i+1] = c.G
		dst[i+2] = c.B
		dst[i+3] = c.A
	}
}

// ToImage wraps an RGBA buffer of w*h*4 bytes in an image without copying.
func ToImage(w, h int, rgba []byte) *image.RGBA {
	return &image.RGBA{Pix: rgba, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
}

// Upscale returns a nearest-neighbour enlargement of img by an integer factor.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+4*b.Dx()]
		row := out.Pix[y*factor*out.Stride : y*factor*out.Stride+out.Stride]
		for x := 0; x < b.Dx(); x++ {
			px := src[x*4 : x*4+4]
			for k := 0; k < factor; k++ {
				copy(row[(x*factor+k)*4:], px)
			}
		}
		for k := 1; k < factor; k++ {
			copy(out.Pix[(y*factor+k)*out.Stride:], row)
		}
	}
	return out
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// Frame renders a grayscale RGBA buffer through a palette and upscales it,
// producing the image shown to users.
func Frame(w, h int, gray []byte, p *Palette, scale int) *image.RGBA {
	buf := make([]byte, len(gray))
	Colorize(buf, gray, p)
	return Upscale(ToImage(w, h, buf), scale)
}
