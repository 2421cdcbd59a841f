//go:build ebiten

package ui

import (
	"image/color"

	"ripples/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var markerColor = color.RGBA{R: 255, G: 220, B: 0, A: 255}

// Overlay draws frame statistics and the last drop location on top of the
// heightfield.
type Overlay struct {
	sim       core.Sim
	showStats bool

	marked         bool
	markX, markY   float32
	lastStats      core.Stats
	lastFrameDelta float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showStats: true}
}

// Mark records the screen position of the most recent drop.
func (o *Overlay) Mark(x, y int) {
	o.marked = true
	o.markX, o.markY = float32(x), float32(y)
}

// Update toggles the stats readout and samples the sim for this frame.
func (o *Overlay) Update(frameDelta float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showStats = !o.showStats
	}
	o.lastFrameDelta = frameDelta
	if provider, ok := o.sim.(core.StatsProvider); ok && o.showStats {
		o.lastStats = provider.Stats()
	}
}

// Draw paints the overlay.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.marked {
		vector.StrokeCircle(screen, o.markX, o.markY, 6, 1.5, markerColor, true)
	}
	if !o.showStats {
		return
	}
	ebitenutil.DebugPrint(screen, formatStats(o.lastStats, o.lastFrameDelta, ebiten.ActualFPS()))
}
