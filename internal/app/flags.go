package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Preset   string
	Palette  string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Brush    int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "grayscott",
		Preset:   "coral",
		Palette:  "gray",
		Width:    256,
		Height:   256,
		Scale:    3,
		TPS:      60,
		Seed:     42,
		Brush:    6,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "sketch to run")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named feed/kill preset")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color palette")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Brush, "brush", c.Brush, "paint radius in cells")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels, 0 hides it")
}

// SimConfig returns the string map handed to the sketch factory.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"preset": c.Preset,
	}
}

// cellAt converts a cursor position to grid coordinates. It reports false
// when the cursor is outside the field.
func cellAt(mx, my, scale, w, h int) (int, int, bool) {
	if scale <= 0 {
		scale = 1
	}
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y := mx/scale, my/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// nextName returns the entry after current in names, wrapping around.
func nextName(names []string, current string) string {
	if len(names) == 0 {
		return current
	}
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
