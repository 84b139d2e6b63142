package grayscott

import (
	"fmt"
	"math"

	"mad-rd/internal/core"
)

// DefaultSeedSize is the side length, in cells, of the square of B placed at
// the grid center by Initialize.
const DefaultSeedSize = 40

// Laplacian kernel weights. The center weight is the negated sum of the
// neighbor weights so a uniform field has zero Laplacian.
const (
	weightCenter = -1.0
	weightEdge   = 0.2
	weightCorner = 0.05
)

// Cell holds the two concentrations at one grid point.
type Cell struct {
	A, B float64
}

// FieldState reports where a field is in its lifecycle.
type FieldState uint8

const (
	// StateSeeded is the state right after Initialize.
	StateSeeded FieldState = iota
	// StateEvolving is entered by the first Step.
	StateEvolving
)

func (s FieldState) String() string {
	if s == StateEvolving {
		return "evolving"
	}
	return "seeded"
}

// Field owns two equal-sized concentration grids and advances them with the
// Gray-Scott equations. Storage is struct-of-arrays: a and b are the current
// buffers, na and nb the scratch buffers written by Step.
type Field struct {
	grid core.Torus

	a, b   []float64
	na, nb []float64

	seedSize int
	steps    uint64
	state    FieldState
}

// NewField allocates a w×h field and seeds it. It panics when either
// dimension is not positive.
func NewField(w, h int) *Field {
	return NewFieldWithSeed(w, h, DefaultSeedSize)
}

// NewFieldWithSeed is NewField with a custom seed square side.
func NewFieldWithSeed(w, h, seedSize int) *Field {
	f := &Field{seedSize: seedSize}
	f.Initialize(w, h)
	return f
}

// SetSeedSize changes the side of the seeded square used by later calls to
// Initialize. Sizes <= 0 disable seeding.
func (f *Field) SetSeedSize(n int) { f.seedSize = n }

// SeedSize returns the configured seed square side.
func (f *Field) SeedSize() int { return f.seedSize }

// Initialize (re)allocates both buffers, fills them with a=1, b=0 and seeds a
// centered square with b=1.
func (f *Field) Initialize(w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("grayscott: invalid field size %dx%d", w, h))
	}
	f.grid = core.Torus{W: w, H: h}
	n := w * h
	f.a = make([]float64, n)
	f.b = make([]float64, n)
	f.na = make([]float64, n)
	f.nb = make([]float64, n)
	for i := range f.a {
		f.a[i] = 1
		f.na[i] = 1
	}
	f.seedSquare(f.seedSize)
	f.steps = 0
	f.state = StateSeeded
}

// SeedRect returns the clamped bounds [x0,x1)×[y0,y1) of the centered seed
// square for the configured seed size. An empty rectangle means no seed.
func (f *Field) SeedRect() (x0, y0, x1, y1 int) {
	return seedRect(f.grid.W, f.grid.H, f.seedSize)
}

func seedRect(w, h, side int) (x0, y0, x1, y1 int) {
	if side <= 0 {
		return 0, 0, 0, 0
	}
	x0 = w/2 - side/2
	y0 = h/2 - side/2
	x1 = x0 + side
	y1 = y0 + side
	x0, x1 = max(x0, 0), min(x1, w)
	y0, y1 = max(y0, 0), min(y1, h)
	return x0, y0, x1, y1
}

func (f *Field) seedSquare(side int) {
	x0, y0, x1, y1 := seedRect(f.grid.W, f.grid.H, side)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.b[f.grid.Index(x, y)] = 1
		}
	}
}

// Paint sets b=1 for every in-bounds cell within Euclidean radius r of
// (x, y). Cells outside the grid are skipped; the disk does not wrap.
func (f *Field) Paint(x, y, r int) {
	if r < 0 {
		return
	}
	r2 := r * r
	y0, y1 := max(y-r, 0), min(y+r, f.grid.H-1)
	x0, x1 := max(x-r, 0), min(x+r, f.grid.W-1)
	for py := y0; py <= y1; py++ {
		dy := py - y
		for px := x0; px <= x1; px++ {
			dx := px - x
			if dx*dx+dy*dy > r2 {
				continue
			}
			f.b[f.grid.Index(px, py)] = 1
		}
	}
}

// Step advances the field by one explicit finite-difference update and swaps
// the buffers. Reads come only from the current buffers.
func (f *Field) Step(p Params) {
	w, h := f.grid.W, f.grid.H
	a, b := f.a, f.b
	na, nb := f.na, f.nb
	feedKill := p.Kill + p.Feed

	for y := 0; y < h; y++ {
		up := f.grid.NeighborIndex(0, y, 0, -1)
		row := y * w
		down := f.grid.NeighborIndex(0, y, 0, 1)
		for x := 0; x < w; x++ {
			l := f.grid.NeighborIndex(x, 0, -1, 0)
			r := f.grid.NeighborIndex(x, 0, 1, 0)

			i := row + x
			av, bv := a[i], b[i]

			lapA := weightCenter*av +
				weightEdge*(a[row+l]+a[row+r]+a[up+x]+a[down+x]) +
				weightCorner*(a[up+l]+a[up+r]+a[down+l]+a[down+r])
			lapB := weightCenter*bv +
				weightEdge*(b[row+l]+b[row+r]+b[up+x]+b[down+x]) +
				weightCorner*(b[up+l]+b[up+r]+b[down+l]+b[down+r])

			reaction := av * bv * bv
			na[i] = clamp01(av + p.DA*lapA - reaction + p.Feed*(1-av))
			nb[i] = clamp01(bv + p.DB*lapB + reaction - feedKill*bv)
		}
	}

	f.a, f.na = f.na, f.a
	f.b, f.nb = f.nb, f.b
	f.steps++
	f.state = StateEvolving
}

// StepN runs n sequential steps with the same parameters.
func (f *Field) StepN(p Params, n int) {
	for i := 0; i < n; i++ {
		f.Step(p)
	}
}

// Render returns a freshly allocated grayscale RGBA image of the field.
func (f *Field) Render() []byte {
	buf := make([]byte, 4*f.grid.Len())
	f.RenderInto(buf)
	return buf
}

// RenderInto writes the grayscale RGBA image into buf, which must hold at
// least W*H*4 bytes.
func (f *Field) RenderInto(buf []byte) {
	for i := range f.a {
		v := Intensity(f.a[i], f.b[i])
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 255
	}
}

// Intensity maps a cell to its grayscale value, clamp((a-b)*255, 0, 255).
func Intensity(a, b float64) uint8 {
	v := math.RoundToEven((a - b) * 255)
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Size returns the grid dimensions.
func (f *Field) Size() (int, int) { return f.grid.W, f.grid.H }

// Torus exposes the grid geometry.
func (f *Field) Torus() core.Torus { return f.grid }

// At returns the current concentrations at (x, y), wrapping out-of-range
// coordinates.
func (f *Field) At(x, y int) Cell {
	x, y = f.grid.Wrap(x, y)
	i := f.grid.Index(x, y)
	return Cell{A: f.a[i], B: f.b[i]}
}

// A exposes the current A buffer. Callers must not modify it.
func (f *Field) A() []float64 { return f.a }

// B exposes the current B buffer. Callers must not modify it.
func (f *Field) B() []float64 { return f.b }

// Steps returns the number of steps taken since the last Initialize.
func (f *Field) Steps() uint64 { return f.steps }

// State reports the lifecycle state.
func (f *Field) State() FieldState { return f.state }

// clamp01 limits v to [0, 1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
