// Package stats computes summary measures of a reaction-diffusion field and
// of its rendered image.
package stats

import (
	"math"

	"mad-rd/internal/sims/grayscott"
)

// CoverageThreshold is the B concentration above which a cell counts as
// covered.
const CoverageThreshold = 0.25

// Summary describes the concentrations of a field at one instant.
type Summary struct {
	Step      uint64  `json:"step"`
	MeanA     float64 `json:"mean_a"`
	MeanB     float64 `json:"mean_b"`
	MinB      float64 `json:"min_b"`
	MaxB      float64 `json:"max_b"`
	CoverageB float64 `json:"coverage_b"`
}

// Summarize computes a Summary of the field's current buffers.
func Summarize(f *grayscott.Field) Summary {
	a, b := f.A(), f.B()
	s := Summary{Step: f.Steps(), MinB: math.Inf(1), MaxB: math.Inf(-1)}
	if len(a) == 0 {
		return Summary{}
	}
	covered := 0
	for i := range a {
		s.MeanA += a[i]
		s.MeanB += b[i]
		s.MinB = math.Min(s.MinB, b[i])
		s.MaxB = math.Max(s.MaxB, b[i])
		if b[i] > CoverageThreshold {
			covered++
		}
	}
	n := float64(len(a))
	s.MeanA /= n
	s.MeanB /= n
	s.CoverageB = float64(covered) / n
	return s
}

// EdgeDensity returns the fraction of horizontally or vertically adjacent
// pixel pairs whose intensity differs by at least threshold. Pairs wrap
// around the edges like the field does.
func EdgeDensity(rgba []byte, w, h int, threshold uint8) float64 {
	if w <= 0 || h <= 0 || len(rgba) < 4*w*h {
		return 0
	}
	edges := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := rgba[(y*w+x)*4]
			right := rgba[(y*w+(x+1)%w)*4]
			down := rgba[(((y+1)%h)*w+x)*4]
			if absDiff(v, right) >= threshold {
				edges++
			}
			if absDiff(v, down) >= threshold {
				edges++
			}
		}
	}
	return float64(edges) / float64(2*w*h)
}

// Uniform reports whether every pixel of an RGBA buffer has the same
// intensity.
func Uniform(rgba []byte) bool {
	for i := 4; i < len(rgba); i += 4 {
		if rgba[i] != rgba[0] {
			return false
		}
	}
	return true
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Series records MeanB samples over the course of a run.
type Series struct {
	Steps []float64
	MeanB []float64
}

// Observe appends the field's current mean B.
func (s *Series) Observe(f *grayscott.Field) {
	sum := Summarize(f)
	s.Steps = append(s.Steps, float64(sum.Step))
	s.MeanB = append(s.MeanB, sum.MeanB)
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.MeanB) }
