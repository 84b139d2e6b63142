package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mad-rd/internal/render"
	"mad-rd/internal/sims/grayscott"
)

const (
	DefaultSketch     = "grayscott"
	DefaultWidth      = 128
	DefaultHeight     = 128
	DefaultDownsample = 2
	DefaultScale      = 3
	DefaultSteps      = 2000
	DefaultPalette    = "gray"
)

var (
	// ErrInvalidSize indicates a non-positive grid or surface dimension.
	ErrInvalidSize = errors.New("config: invalid grid size")

	// ErrUnknownPreset indicates a preset name that is not built in.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrUnknownPalette indicates a palette name that is not built in.
	ErrUnknownPalette = errors.New("config: unknown palette")

	// ErrParamRange indicates rates outside their documented ranges.
	ErrParamRange = errors.New("config: parameter out of range")
)

// Config is a run file. Params, when present, override the preset rates.
type Config struct {
	Sketch        string            `yaml:"sketch"`
	Width         int               `yaml:"width"`
	Height        int               `yaml:"height"`
	SurfaceWidth  int               `yaml:"surface_width"`
	SurfaceHeight int               `yaml:"surface_height"`
	Downsample    int               `yaml:"downsample"`
	Seed          int64             `yaml:"seed"`
	SeedSize      int               `yaml:"seed_size"`
	ScatterSeeds  int               `yaml:"scatter_seeds"`
	ScatterRadius int               `yaml:"scatter_radius"`
	Steps         int               `yaml:"steps"`
	Preset        string            `yaml:"preset"`
	Params        *grayscott.Params `yaml:"params,omitempty"`
	Palette       string            `yaml:"palette"`
	Scale         int               `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Sketch:        DefaultSketch,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Downsample:    DefaultDownsample,
		Seed:          42,
		SeedSize:      grayscott.DefaultSeedSize,
		ScatterRadius: 4,
		Steps:         DefaultSteps,
		Preset:        "coral",
		Palette:       DefaultPalette,
		Scale:         DefaultScale,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// A params block only overrides the keys it names; the rest come from
	// the preset.
	var raw struct {
		Params yaml.Node `yaml:"params"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if raw.Params.Kind == yaml.MappingNode {
		p := cfg.presetRates()
		if err := raw.Params.Decode(&p); err != nil {
			return nil, fmt.Errorf("config: parse %s params: %w", path, err)
		}
		cfg.Params = &p
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GridSize returns the grid dimensions. A surface size, when set, takes
// precedence and is divided by the downsample factor.
func (c *Config) GridSize() (int, int) {
	if c.SurfaceWidth > 0 && c.SurfaceHeight > 0 {
		return grayscott.GridSize(c.SurfaceWidth, c.SurfaceHeight, c.Downsample)
	}
	return c.Width, c.Height
}

// Rates resolves the preset and explicit params into the rates to run with.
func (c *Config) Rates() grayscott.Params {
	p := c.presetRates()
	if c.Params != nil {
		p = *c.Params
		if p.StepsPerFrame == 0 {
			p.StepsPerFrame = grayscott.DefaultParams().StepsPerFrame
		}
	}
	return p
}

func (c *Config) presetRates() grayscott.Params {
	p := grayscott.DefaultParams()
	if preset, ok := grayscott.PresetByName(c.Preset); ok {
		p = preset.Apply(p)
	}
	return p
}

// Validate checks dimensions, names and rate ranges.
func (c *Config) Validate() error {
	w, h := c.GridSize()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if c.Preset != "" && c.Preset != "custom" {
		if _, ok := grayscott.PresetByName(c.Preset); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, c.Preset)
		}
	}
	if _, err := render.PaletteByName(c.Palette); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownPalette, c.Palette)
	}
	if p := c.Rates(); !p.InRange() {
		return fmt.Errorf("%w: feed=%v kill=%v da=%v db=%v steps_per_frame=%d",
			ErrParamRange, p.Feed, p.Kill, p.DA, p.DB, p.StepsPerFrame)
	}
	return nil
}

// SimConfig converts the run file into a simulation config.
func (c *Config) SimConfig() grayscott.Config {
	w, h := c.GridSize()
	preset := c.Preset
	if c.Params != nil {
		preset = "custom"
	}
	return grayscott.Config{
		Width:         w,
		Height:        h,
		SeedSize:      c.SeedSize,
		ScatterSeeds:  c.ScatterSeeds,
		ScatterRadius: c.ScatterRadius,
		Seed:          c.Seed,
		Preset:        preset,
		Params:        c.Rates(),
	}
}
