//go:build ebiten

package app

import (
	"log"

	"ripples/internal/core"
	"ripples/internal/render"
	"ripples/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// speedStep is the sim-speed change applied by the +/- keys.
const speedStep = 0.25

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.HeightPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FrameClock
	view    Viewport

	// colourScale is the height that saturates the palette.
	colourScale float64

	showHUD  bool
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:         sim,
		painter:     render.NewHeightPainter(size.W, size.H, render.DefaultPalette),
		hud:         ui.NewHUD(sim, cfg.HUDWidth),
		overlay:     ui.NewOverlay(sim),
		clock:       core.NewFrameClock(),
		view:        Viewport{Nodes: size.W, Scale: cfg.Scale},
		colourScale: 1,
		showHUD:     cfg.HUDWidth > 0,
		seed:        cfg.Seed,
	}
	if p, ok := sim.(core.Perturber); ok {
		g.view.Width, g.view.Height = p.Extent()
	}
	if provider, ok := sim.(core.StatsProvider); ok {
		if peak := provider.Stats().MaxAmplitude; peak > 0 {
			g.colourScale = peak / 2
		}
	}
	return g
}

// ScreenSize returns the window size needed for the view and HUD.
func (g *Game) ScreenSize() (int, int) {
	w := g.view.Pixels()
	if g.showHUD {
		w += g.hud.Width()
	}
	return w, g.view.Pixels()
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.clock.Reset()
	g.tickOnce = false
}

// Update handles per-frame input, applies clicks and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.nudgeSpeed(speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.nudgeSpeed(-speedStep)
	}

	consumed := false
	if g.showHUD {
		consumed = g.hud.Update(g.view.Pixels())
	}
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.drop(ebiten.CursorPosition())
	}

	// Perturbations above are applied before the frame is integrated.
	dt := g.clock.Delta()
	if g.paused && !g.tickOnce {
		g.overlay.Update(0)
		return nil
	}
	if g.tickOnce {
		dt = 1000 / float64(ebiten.TPS())
		g.tickOnce = false
	}
	if err := g.sim.Advance(dt); err != nil {
		return err
	}
	g.overlay.Update(dt)
	return nil
}

func (g *Game) drop(px, py int) {
	p, ok := g.sim.(core.Perturber)
	if !ok {
		return
	}
	x, z, ok := g.view.ToWorld(px, py)
	if !ok {
		return
	}
	if err := p.Perturb(x, z); err != nil {
		log.Printf("drop at (%.1f, %.1f) rejected: %v", x, z, err)
		return
	}
	g.overlay.Mark(px, py)
}

func (g *Game) nudgeSpeed(delta float64) {
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	provider, ok := g.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	p, ok := provider.Parameters().Lookup("sim_speed")
	if !ok {
		return
	}
	current, ok := parseFloat(p.Value)
	if !ok {
		return
	}
	ctrl := core.ParameterControl{Min: speedStep, HasMin: true, Max: 8, HasMax: true}
	if err := setter.SetFloatParameter("sim_speed", ctrl.Clamp(current+delta)); err != nil {
		log.Printf("sim speed unchanged: %v", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Heights(), g.colourScale, g.view.Scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.view.Pixels(), g.view.Pixels())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}
