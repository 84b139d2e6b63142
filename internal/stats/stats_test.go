package stats

import (
	"math"
	"testing"

	"mad-rd/internal/sims/grayscott"
)

func TestSummarizeSeededField(t *testing.T) {
	f := grayscott.NewField(64, 64)
	s := Summarize(f)
	wantB := 1600.0 / 4096.0
	if math.Abs(s.MeanB-wantB) > 1e-12 {
		t.Fatalf("mean B = %v, want %v", s.MeanB, wantB)
	}
	if s.MeanA != 1 || s.MinB != 0 || s.MaxB != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if math.Abs(s.CoverageB-wantB) > 1e-12 {
		t.Fatalf("coverage = %v, want %v", s.CoverageB, wantB)
	}
}

func TestEdgeDensity(t *testing.T) {
	const w, h = 4, 2
	rgba := make([]byte, 4*w*h)
	if got := EdgeDensity(rgba, w, h, 10); got != 0 {
		t.Fatalf("flat image edge density = %v", got)
	}
	if !Uniform(rgba) {
		t.Fatal("zero image should be uniform")
	}
	// Column 0 white: each row has two horizontal edges (0|1 and 3|0).
	for y := 0; y < h; y++ {
		rgba[(y*w)*4] = 255
	}
	if got := EdgeDensity(rgba, w, h, 10); math.Abs(got-4.0/16.0) > 1e-12 {
		t.Fatalf("edge density = %v, want 0.25", got)
	}
	if Uniform(rgba) {
		t.Fatal("striped image is not uniform")
	}
}

func TestSeries(t *testing.T) {
	f := grayscott.NewField(16, 16)
	var s Series
	s.Observe(f)
	f.Step(grayscott.DefaultParams())
	s.Observe(f)
	if s.Len() != 2 || s.Steps[1] != 1 {
		t.Fatalf("unexpected series %+v", s)
	}
}

// The maze and spots presets settle into visibly different textures; this
// is a coarse statistical check, not a pixel comparison.
func TestMazeAndSpotsTexturesDiffer(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running texture comparison")
	}
	run := func(name string) (float64, Summary) {
		preset, ok := grayscott.PresetByName(name)
		if !ok {
			t.Fatalf("missing preset %s", name)
		}
		f := grayscott.NewField(64, 64)
		f.StepN(preset.Apply(grayscott.DefaultParams()), 2000)
		return EdgeDensity(f.Render(), 64, 64, 32), Summarize(f)
	}
	mazeEdges, maze := run("maze")
	spotsEdges, spots := run("spots")
	if mazeEdges == 0 {
		t.Fatalf("maze settled into a uniform field (mean B %.4f)", maze.MeanB)
	}
	if math.Abs(mazeEdges-spotsEdges) < 0.01 && math.Abs(maze.MeanB-spots.MeanB) < 0.02 {
		t.Fatalf("maze (edges %.4f, mean B %.4f) indistinguishable from spots (edges %.4f, mean B %.4f)",
			mazeEdges, maze.MeanB, spotsEdges, spots.MeanB)
	}
}
