package ui

import (
	"image"
	"math"
	"strconv"

	"ripples/internal/core"
)

// controlState tracks one adjustable parameter shown on the HUD.
type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// adjustedValue returns the value one step away from current in direction
// dir, clamped to the control bounds. ok is false when the step would not
// change the value.
func adjustedValue(ctrl core.ParameterControl, current float64, dir int) (float64, bool) {
	if dir == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := ctrl.Clamp(current + float64(dir)*step)
	if math.Abs(target-current) < 1e-12 {
		return current, false
	}
	return target, true
}

// refreshControls copies current values from the snapshot into the states.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		st := &states[i]
		p, ok := snap.Lookup(st.control.Key)
		if !ok {
			st.hasValue = false
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			st.hasValue = false
			continue
		}
		st.value = v
		st.hasValue = true
	}
}

// formatValue renders a control value with just enough precision for its step.
func formatValue(ctrl core.ParameterControl, v float64) string {
	decimals := 2
	if ctrl.Step > 0 && ctrl.Step < 0.01 {
		decimals = int(math.Ceil(-math.Log10(ctrl.Step)))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}
