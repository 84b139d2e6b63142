//go:build ebiten

package app

import (
	"log"
	"time"

	"mad-rd/internal/core"
	"mad-rd/internal/render"
	"mad-rd/internal/sims/grayscott"
	"mad-rd/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var presetKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	gray    []byte

	scale    int
	hudWidth int
	brush    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	palette, err := render.PaletteByName(cfg.Palette)
	if err != nil {
		log.Printf("%v, falling back to gray", err)
		palette = render.Palettes()[0]
	}
	scale := max(cfg.Scale, 1)
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, palette),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, scale),
		gray:     make([]byte, 4*size.W*size.H),
		scale:    scale,
		hudWidth: max(cfg.HUDWidth, 0),
		brush:    max(cfg.Brush, 0),
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.cyclePalette()
	}
	g.handlePresetKeys()

	size := g.sim.Size()
	onPanel := g.hud.Update(size.W*g.scale, g.status())
	if !onPanel {
		g.handlePaint()
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePresetKeys() {
	gs, ok := g.sim.(*grayscott.Simulation)
	if !ok {
		return
	}
	names := grayscott.PresetNames()
	for i, key := range presetKeys {
		if i >= len(names) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			gs.ApplyPreset(names[i])
		}
	}
}

func (g *Game) handlePaint() {
	painter, ok := g.sim.(core.Painter)
	if !ok || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	size := g.sim.Size()
	mx, my := ebiten.CursorPosition()
	if x, y, inside := cellAt(mx, my, g.scale, size.W, size.H); inside {
		painter.Paint(x, y, g.brush)
	}
}

func (g *Game) cyclePalette() {
	name := nextName(render.PaletteNames(), g.painter.Palette().Name)
	if p, err := render.PaletteByName(name); err == nil {
		g.painter.SetPalette(p)
	}
}

func (g *Game) status() ui.Status {
	st := ui.Status{Palette: g.painter.Palette().Name, Paused: g.paused, Brush: g.brush}
	if gs, ok := g.sim.(*grayscott.Simulation); ok {
		st.Preset = gs.Config().Preset
		st.Steps = gs.Field().Steps()
	}
	return st
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if r, ok := g.sim.(core.RGBARenderer); ok {
		r.RenderRGBA(g.gray)
	} else {
		for i, v := range g.sim.Cells() {
			g.gray[i*4], g.gray[i*4+1], g.gray[i*4+2], g.gray[i*4+3] = v, v, v, 255
		}
	}
	g.painter.Blit(screen, g.gray, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.brush)
	}
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
