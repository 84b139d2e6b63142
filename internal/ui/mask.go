package ui

import (
	"image/color"
	"math"
)

const (
	maskMaxAlpha      = 150.0
	maskGlowBase      = 0.35
	maskGlowRange     = 0.65
	maskIntensityBias = 0.75
)

// fillMaskRGBA tints a [0,1] scalar field into premultiplied RGBA pixels.
// Zero cells stay fully transparent.
func fillMaskRGBA(buf []byte, mask []float64, tint color.RGBA) {
	for i, v := range mask {
		base := i * 4
		intensity := math.Max(0, math.Min(1, v))
		if !(intensity > 0) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		alpha := math.Round(maskMaxAlpha * math.Pow(intensity, maskIntensityBias))
		glow := maskGlowBase + maskGlowRange*math.Sqrt(intensity)
		a := alpha / 255
		buf[base+0] = uint8(math.Round(float64(tint.R) * glow * a))
		buf[base+1] = uint8(math.Round(float64(tint.G) * glow * a))
		buf[base+2] = uint8(math.Round(float64(tint.B) * glow * a))
		buf[base+3] = uint8(alpha)
	}
}
