package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a sketch must implement to be driven by
// a frame loop.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Painter is implemented by sketches that accept pointer-driven
// perturbations in grid coordinates.
type Painter interface {
	Paint(x, y, radius int)
}

// RGBARenderer is implemented by sketches that render straight to an RGBA
// buffer of Size().W*Size().H*4 bytes.
type RGBARenderer interface {
	RenderRGBA(buf []byte)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered sketch names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
