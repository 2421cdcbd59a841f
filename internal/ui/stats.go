package ui

import (
	"fmt"

	"ripples/internal/core"
)

// formatStats renders the overlay readout.
func formatStats(s core.Stats, frameDelta, fps float64) string {
	clamped := ""
	if s.Clamped {
		clamped = " (clamped)"
	}
	return fmt.Sprintf("FPS %.0f  frame %.1fms%s\nsim %.0fms  sub-steps %d\nenergy %.4g  var %.4g  max %.2f",
		fps, frameDelta, clamped, s.Elapsed, s.SubSteps, s.Energy, s.Variance, s.MaxAmplitude)
}
