//go:build !ebiten

package ui

import "ripples/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim) *Overlay { return &Overlay{} }

// Mark is a no-op in headless builds.
func (o *Overlay) Mark(int, int) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update(float64) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
