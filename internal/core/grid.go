package core

// Torus describes a W×H grid whose edges wrap around in both directions.
// Cells are addressed in row-major order.
type Torus struct {
	W, H int
}

// NewTorus returns a Torus with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewTorus(w, h int) Torus {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Torus{W: w, H: h}
}

// Len returns the number of cells.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear slice index for in-range coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Contains reports whether (x, y) lies inside the grid without wrapping.
func (t Torus) Contains(x, y int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	return wrap(x, t.W), wrap(y, t.H)
}

// NeighborIndex returns the linear index of the cell at offset (dx, dy)
// from (x, y), wrapping across every edge.
func (t Torus) NeighborIndex(x, y, dx, dy int) int {
	return wrap(y+dy, t.H)*t.W + wrap(x+dx, t.W)
}

// wrap is a Euclidean modulo; Go's % keeps the sign of the dividend.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
