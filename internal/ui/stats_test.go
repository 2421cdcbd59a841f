package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ripples/internal/core"
)

func TestFormatStats(t *testing.T) {
	got := formatStats(core.Stats{Energy: 0.55, Variance: 9.35, MaxAmplitude: 50, Elapsed: 1200, SubSteps: 2}, 16.4, 60)
	assert.Equal(t, "FPS 60  frame 16.4ms\nsim 1200ms  sub-steps 2\nenergy 0.55  var 9.35  max 50.00", got)

	got = formatStats(core.Stats{Clamped: true, SubSteps: 9}, 250, 4)
	assert.Contains(t, got, "frame 250.0ms (clamped)")
}
