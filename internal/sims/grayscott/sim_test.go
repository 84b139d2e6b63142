package grayscott

import (
	"math"
	"slices"
	"testing"

	"mad-rd/internal/core"
)

func TestRegistryProvidesGrayScott(t *testing.T) {
	factory, ok := core.Sims()["grayscott"]
	if !ok {
		t.Fatal("grayscott should register itself")
	}
	sim := factory(map[string]string{"w": "32", "h": "24", "preset": "maze"})
	if sim.Size() != (core.Size{W: 32, H: 24}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
	gs := sim.(*Simulation)
	if gs.Params().Feed != 0.029 || gs.Params().Kill != 0.057 {
		t.Fatalf("maze preset not applied: %+v", gs.Params())
	}
}

func TestNewWithConfigMatchesFreshField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 48, 40
	cfg.SeedSize = 12
	sim := NewWithConfig(cfg)

	want := NewFieldWithSeed(48, 40, 12)
	if w, h := sim.Field().Size(); w != 48 || h != 40 {
		t.Fatalf("field size %dx%d", w, h)
	}
	if !slices.Equal(sim.Field().A(), want.A()) || !slices.Equal(sim.Field().B(), want.B()) {
		t.Fatal("new simulation should hold a freshly seeded field")
	}
	if sim.Field().State() != StateSeeded || sim.Field().Steps() != 0 {
		t.Fatalf("unexpected state %v after %d steps", sim.Field().State(), sim.Field().Steps())
	}
}

func TestSimulationStepRunsStepsPerFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Params.StepsPerFrame = 5
	sim := NewWithConfig(cfg)

	sim.Step()
	if got := sim.Field().Steps(); got != 5 {
		t.Fatalf("expected 5 field steps per frame, got %d", got)
	}
}

func TestSimulationCellsMatchRender(t *testing.T) {
	sim := New(20, 20)
	sim.Paint(3, 3, 2)
	sim.Step()

	cells := sim.Cells()
	rgba := make([]byte, 4*len(cells))
	sim.RenderRGBA(rgba)
	for i, c := range cells {
		if rgba[i*4] != c {
			t.Fatalf("cell %d intensity %d differs from rendered %d", i, c, rgba[i*4])
		}
	}
}

func TestResetScatterDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 48, 32
	cfg.SeedSize = 0
	cfg.ScatterSeeds = 6
	cfg.ScatterRadius = 2
	cfg.Seed = 99
	sim := NewWithConfig(cfg)

	initial := slices.Clone(sim.Field().B())
	if !slices.Contains(initial, 1) {
		t.Fatal("scatter seeding should paint some cells")
	}

	sim.Step()
	sim.Reset(0)
	if !slices.Equal(initial, sim.Field().B()) {
		t.Fatal("reset with the configured seed is not deterministic")
	}

	sim.Reset(777)
	explicit := slices.Clone(sim.Field().B())
	sim.Reset(777)
	if !slices.Equal(explicit, sim.Field().B()) {
		t.Fatal("reset with an explicit seed is not deterministic")
	}
	if slices.Equal(initial, explicit) {
		t.Fatal("different seeds should scatter differently")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	sim := New(8, 8)
	if !sim.SetFloatParameter("feed", 0.5) {
		t.Fatal("feed should be adjustable")
	}
	if got := sim.Params().Feed; got != FeedMax {
		t.Fatalf("feed should clamp to %v, got %v", FeedMax, got)
	}
	if !sim.SetFloatParameter("kill", 0) {
		t.Fatal("kill should be adjustable")
	}
	if got := sim.Params().Kill; got != KillMin {
		t.Fatalf("kill should clamp to %v, got %v", KillMin, got)
	}
	if sim.Config().Preset != "custom" {
		t.Fatalf("manual edits should mark the preset custom, got %q", sim.Config().Preset)
	}
	if sim.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if !sim.SetIntParameter("steps_per_frame", 1000) || sim.Params().StepsPerFrame != MaxStepsPerFrame {
		t.Fatalf("steps per frame should clamp, got %d", sim.Params().StepsPerFrame)
	}
}

func TestParametersSnapshot(t *testing.T) {
	sim := New(8, 8)
	sim.ApplyPreset("spots")
	snap := sim.Parameters()
	p, ok := snap.Lookup("feed")
	if !ok || p.Value != "0.014" {
		t.Fatalf("feed parameter = %+v, %v", p, ok)
	}
	p, ok = snap.Lookup("preset")
	if !ok || p.Value != "spots" {
		t.Fatalf("preset parameter = %+v, %v", p, ok)
	}
	for _, ctrl := range sim.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q missing from snapshot", ctrl.Key)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":               "40",
		"h":               "-3",
		"preset":          "worms",
		"kill":            "0.065",
		"steps_per_frame": "3",
		"seed_size":       "10",
	})
	if c.Width != 40 || c.Height != DefaultConfig().Height {
		t.Fatalf("unexpected dimensions %dx%d", c.Width, c.Height)
	}
	if c.Params.Feed != 0.078 || c.Params.Kill != 0.065 {
		t.Fatalf("explicit kill should override preset: %+v", c.Params)
	}
	if c.Params.StepsPerFrame != 3 || c.SeedSize != 10 {
		t.Fatalf("unexpected params %+v seed size %d", c.Params, c.SeedSize)
	}
}

func TestGridSize(t *testing.T) {
	w, h := GridSize(800, 600, 2)
	if w != 400 || h != 300 {
		t.Fatalf("GridSize = %dx%d", w, h)
	}
	w, h = GridSize(1, 1, 4)
	if w != 1 || h != 1 {
		t.Fatalf("GridSize should clamp to 1, got %dx%d", w, h)
	}
}

func TestPresetsWithinDocumentedRanges(t *testing.T) {
	for _, p := range Presets() {
		params := p.Apply(DefaultParams())
		if !params.InRange() {
			t.Errorf("preset %s outside documented ranges: %+v", p.Name, params)
		}
	}
	if _, ok := PresetByName("nope"); ok {
		t.Fatal("unknown preset should not resolve")
	}
	if math.IsNaN(Params{Feed: math.NaN()}.Clamped().Feed) {
		t.Fatal("clamped feed must not be NaN")
	}
}
