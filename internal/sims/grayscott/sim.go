package grayscott

import (
	"mad-rd/internal/core"
	pkgcore "mad-rd/pkg/core"
)

// Simulation adapts a Field to the core.Sim frame-loop contract. Each Step
// call advances the field Params.StepsPerFrame times.
type Simulation struct {
	cfg     Config
	field   *Field
	display []uint8
	dirty   bool
}

// New returns a Simulation with the provided dimensions using defaults.
func New(w, h int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a seeded Simulation configured from cfg.
func NewWithConfig(cfg Config) *Simulation {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	s := &Simulation{
		cfg:     cfg,
		field:   &Field{},
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "grayscott" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Field exposes the underlying field.
func (s *Simulation) Field() *Field { return s.field }

// Params returns the active rates.
func (s *Simulation) Params() Params { return s.cfg.Params }

// SetParams replaces the active rates after clamping them.
func (s *Simulation) SetParams(p Params) { s.cfg.Params = p.Clamped() }

// ApplyPreset switches to the named preset. It reports false for unknown
// names.
func (s *Simulation) ApplyPreset(name string) bool {
	p, ok := PresetByName(name)
	if !ok {
		return false
	}
	s.cfg.Preset = p.Name
	s.cfg.Params = p.Apply(s.cfg.Params)
	return true
}

// Reset reinitializes the field and optionally scatters extra seeds. A zero
// seed falls back to the configured one.
func (s *Simulation) Reset(seed int64) {
	s.field.SetSeedSize(s.cfg.SeedSize)
	s.field.Initialize(s.cfg.Width, s.cfg.Height)
	if s.cfg.ScatterSeeds > 0 {
		effective := seed
		if effective == 0 {
			effective = s.cfg.Seed
		}
		rng := pkgcore.NewRNG(effective)
		for i := 0; i < s.cfg.ScatterSeeds; i++ {
			x, y := rng.Point(s.cfg.Width, s.cfg.Height)
			s.field.Paint(x, y, s.cfg.ScatterRadius)
		}
	}
	s.dirty = true
}

// Step advances the field by one animation frame.
func (s *Simulation) Step() {
	n := s.cfg.Params.StepsPerFrame
	if n < 1 {
		n = 1
	}
	s.field.StepN(s.cfg.Params, n)
	s.dirty = true
}

// Paint perturbs the field at grid coordinates (x, y).
func (s *Simulation) Paint(x, y, radius int) {
	s.field.Paint(x, y, radius)
	s.dirty = true
}

// Cells exposes the grayscale intensity of every cell.
func (s *Simulation) Cells() []uint8 {
	if s.dirty {
		a, b := s.field.A(), s.field.B()
		for i := range s.display {
			s.display[i] = Intensity(a[i], b[i])
		}
		s.dirty = false
	}
	return s.display
}

// RenderRGBA writes the grayscale image of the field into buf.
func (s *Simulation) RenderRGBA(buf []byte) { s.field.RenderInto(buf) }

// ConcentrationB exposes the current B buffer for overlays.
func (s *Simulation) ConcentrationB() []float64 { return s.field.B() }

func init() {
	core.Register("grayscott", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
