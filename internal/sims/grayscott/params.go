package grayscott

import "math"

// Documented parameter ranges.
const (
	FeedMin = 0.01
	FeedMax = 0.1
	KillMin = 0.03
	KillMax = 0.07

	MaxStepsPerFrame = 64
)

// Params are the Gray-Scott rates plus the per-frame speed multiplier.
type Params struct {
	DA            float64 `yaml:"da" json:"da"`
	DB            float64 `yaml:"db" json:"db"`
	Feed          float64 `yaml:"feed" json:"feed"`
	Kill          float64 `yaml:"kill" json:"kill"`
	StepsPerFrame int     `yaml:"steps_per_frame" json:"steps_per_frame"`
}

// DefaultParams returns the coral preset at eight steps per frame.
func DefaultParams() Params {
	return Params{DA: 1.0, DB: 0.5, Feed: 0.055, Kill: 0.062, StepsPerFrame: 8}
}

// Clamped returns p with every field limited to its documented range.
func (p Params) Clamped() Params {
	p.DA = clampRange(p.DA, 0, 1)
	p.DB = clampRange(p.DB, 0, 1)
	p.Feed = clampRange(p.Feed, FeedMin, FeedMax)
	p.Kill = clampRange(p.Kill, KillMin, KillMax)
	if p.StepsPerFrame < 1 {
		p.StepsPerFrame = 1
	}
	if p.StepsPerFrame > MaxStepsPerFrame {
		p.StepsPerFrame = MaxStepsPerFrame
	}
	return p
}

// InRange reports whether p already satisfies the documented ranges.
func (p Params) InRange() bool {
	return p == p.Clamped()
}

func clampRange(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Preset is a named feed/kill combination.
type Preset struct {
	Name string
	Feed float64
	Kill float64
}

// Apply returns p with the preset's rates and the standard diffusion rates.
// StepsPerFrame is kept.
func (ps Preset) Apply(p Params) Params {
	p.DA = 1.0
	p.DB = 0.5
	p.Feed = ps.Feed
	p.Kill = ps.Kill
	return p
}

var presets = []Preset{
	{Name: "coral", Feed: 0.055, Kill: 0.062},
	{Name: "maze", Feed: 0.029, Kill: 0.057},
	{Name: "spots", Feed: 0.014, Kill: 0.054},
	{Name: "mitosis", Feed: 0.0367, Kill: 0.0649},
	{Name: "solitons", Feed: 0.030, Kill: 0.062},
	{Name: "worms", Feed: 0.078, Kill: 0.061},
	{Name: "waves", Feed: 0.014, Kill: 0.045},
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName looks up a preset.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
