package ui

import (
	"math"
	"strconv"

	"mad-rd/internal/core"
)

// Status is the non-parameter state shown under the HUD controls.
type Status struct {
	Preset  string
	Palette string
	Steps   uint64
	Paused  bool
	Brush   int
}

// controlState tracks one HUD row.
type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool
	text     string
}

// refresh reads the control's current value out of a snapshot.
func (c *controlState) refresh(snap core.ParameterSnapshot) {
	param, ok := snap.Lookup(c.control.Key)
	if !ok {
		c.hasValue = false
		c.text = "--"
		return
	}
	parsed, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		c.hasValue = false
		c.text = "--"
		return
	}
	c.value = parsed
	c.hasValue = true
	c.text = formatValue(c.control, parsed)
}

// nextValue returns the value one step in direction, clamped to the
// control's bounds, and whether it differs from the current value.
func nextValue(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
		if ctrl.Type == core.ParamTypeFloat {
			step = 0.05
		}
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	return target, math.Abs(target-current) > 1e-9
}

// apply pushes a new value into the sketch through the matching setter.
func apply(sim core.Sim, ctrl core.ParameterControl, value float64) bool {
	switch ctrl.Type {
	case core.ParamTypeInt:
		setter, ok := sim.(core.IntParameterSetter)
		return ok && setter.SetIntParameter(ctrl.Key, int(math.Round(value)))
	case core.ParamTypeFloat:
		setter, ok := sim.(core.FloatParameterSetter)
		return ok && setter.SetFloatParameter(ctrl.Key, value)
	}
	return false
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
