package core

import "testing"

func TestTorusWrap(t *testing.T) {
	g := NewTorus(5, 4)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{-6, 9, 4, 1},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestTorusNeighborsOfOrigin(t *testing.T) {
	g := NewTorus(6, 3)
	seen := map[int]bool{}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			seen[g.NeighborIndex(0, 0, dx, dy)] = true
		}
	}
	if len(seen) != 8 {
		t.Fatalf("origin should have 8 distinct neighbors, got %d", len(seen))
	}
	for _, want := range []int{g.Index(5, 2), g.Index(5, 0), g.Index(0, 2)} {
		if !seen[want] {
			t.Fatalf("missing wrapped neighbor index %d", want)
		}
	}
}

func TestNewTorusClampsDimensions(t *testing.T) {
	g := NewTorus(0, -2)
	if g.W != 1 || g.H != 1 || g.Len() != 1 {
		t.Fatalf("unexpected torus %+v", g)
	}
	if g.Contains(1, 0) || !g.Contains(0, 0) {
		t.Fatal("Contains disagrees with dimensions")
	}
}
