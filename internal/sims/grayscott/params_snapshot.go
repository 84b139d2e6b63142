package grayscott

import (
	"strconv"

	"mad-rd/internal/core"
)

// Parameters reports the current configuration for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				intParam("seed_size", "Seed size", s.cfg.SeedSize),
				{Key: "preset", Label: "Preset", Value: s.cfg.Preset},
			},
		},
		{
			Name: "Rates",
			Params: []core.Parameter{
				floatParam("feed", "Feed", p.Feed),
				floatParam("kill", "Kill", p.Kill),
				floatParam("da", "Diffusion A", p.DA),
				floatParam("db", "Diffusion B", p.DB),
				intParam("steps_per_frame", "Steps/frame", p.StepsPerFrame),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rates adjustable from the HUD.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "feed", Label: "Feed", Type: core.ParamTypeFloat, Step: 0.001, Min: FeedMin, Max: FeedMax},
		{Key: "kill", Label: "Kill", Type: core.ParamTypeFloat, Step: 0.001, Min: KillMin, Max: KillMax},
		{Key: "da", Label: "Diffusion A", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "db", Label: "Diffusion B", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "steps_per_frame", Label: "Steps/frame", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxStepsPerFrame},
	}
}

// SetFloatParameter updates a rate. Values are clamped to the documented
// ranges. Setting a rate by hand clears the preset name.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	p := s.cfg.Params
	switch key {
	case "feed":
		p.Feed = value
	case "kill":
		p.Kill = value
	case "da":
		p.DA = value
	case "db":
		p.DB = value
	default:
		return false
	}
	s.cfg.Params = p.Clamped()
	s.cfg.Preset = "custom"
	return true
}

// SetIntParameter updates the steps-per-frame multiplier.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	if key != "steps_per_frame" {
		return false
	}
	p := s.cfg.Params
	p.StepsPerFrame = value
	s.cfg.Params = p.Clamped()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
