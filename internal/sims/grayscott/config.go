package grayscott

import "strconv"

// Config controls the dimensions, seeding and rates of a Simulation.
type Config struct {
	Width  int
	Height int

	SeedSize      int
	ScatterSeeds  int
	ScatterRadius int
	Seed          int64

	Preset string
	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         256,
		Height:        256,
		SeedSize:      DefaultSeedSize,
		ScatterRadius: 4,
		Seed:          42,
		Preset:        "coral",
		Params:        DefaultParams(),
	}
}

// GridSize derives grid dimensions from a pixel surface and an integer
// downsample factor. Each dimension is at least 1.
func GridSize(surfaceW, surfaceH, downsample int) (int, int) {
	if downsample < 1 {
		downsample = 1
	}
	return max(surfaceW/downsample, 1), max(surfaceH/downsample, 1)
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). A preset is applied before any explicit rate keys.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SeedSize = parsed
		}
	}
	if v, ok := cfg["scatter_seeds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ScatterSeeds = parsed
		}
	}
	if v, ok := cfg["scatter_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ScatterRadius = parsed
		}
	}
	if v, ok := cfg["preset"]; ok {
		if p, found := PresetByName(v); found {
			c.Preset = p.Name
			c.Params = p.Apply(c.Params)
		}
	}
	parseFloat(cfg, "da", &c.Params.DA)
	parseFloat(cfg, "db", &c.Params.DB)
	parseFloat(cfg, "feed", &c.Params.Feed)
	parseFloat(cfg, "kill", &c.Params.Kill)
	if v, ok := cfg["steps_per_frame"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.StepsPerFrame = parsed
		}
	}
	c.Params = c.Params.Clamped()
	return c
}

func parseFloat(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil {
		*dst = parsed
	}
}
