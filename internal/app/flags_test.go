package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("rdview", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-preset", "maze", "-w", "64", "-brush", "3", "-hud", "0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Preset != "maze" || cfg.Width != 64 || cfg.Brush != 3 || cfg.HUDWidth != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.SimConfig()
	if m["w"] != "64" || m["h"] != "256" || m["preset"] != "maze" || m["seed"] != "42" {
		t.Fatalf("unexpected sim config %v", m)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		mx, my int
		x, y   int
		inside bool
	}{
		{0, 0, 0, 0, true},
		{8, 5, 2, 1, true},
		{-1, 3, 0, 0, false},
		{30, 3, 0, 0, false},
		{29, 11, 9, 3, true},
	}
	for _, tc := range cases {
		x, y, ok := cellAt(tc.mx, tc.my, 3, 10, 4)
		if ok != tc.inside || (ok && (x != tc.x || y != tc.y)) {
			t.Errorf("cellAt(%d,%d) = %d,%d,%v", tc.mx, tc.my, x, y, ok)
		}
	}
}

func TestNextName(t *testing.T) {
	names := []string{"gray", "inferno", "ocean"}
	if got := nextName(names, "ocean"); got != "gray" {
		t.Fatalf("nextName wrap = %q", got)
	}
	if got := nextName(names, "gray"); got != "inferno" {
		t.Fatalf("nextName = %q", got)
	}
	if got := nextName(names, "missing"); got != "gray" {
		t.Fatalf("nextName unknown = %q", got)
	}
}
