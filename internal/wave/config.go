package wave

import (
	"fmt"
	"math"
	"strconv"
)

// MaxSubSteps caps how many sub-steps a single Advance call may take, which
// bounds MaxIteratedDT/MaxDT.
const MaxSubSteps = 1e6

// Config holds every tunable of the wave simulation. Times are in
// milliseconds, lengths in scene units.
type Config struct {
	N      int
	Width  float64
	Height float64

	WaveSpeed float64
	Damping   float64

	// MaxDT bounds a single integration sub-step.
	MaxDT float64
	// MaxIteratedDT bounds the simulated time consumed by one Advance call.
	MaxIteratedDT float64
	SimSpeed      float64

	Amplitude float64
	Sigma     float64

	// Workers > 1 spreads the compute phase over that many goroutines.
	Workers int
}

// DefaultConfig returns the standard pool configuration.
func DefaultConfig() Config {
	return Config{
		N:             60,
		Width:         200,
		Height:        200,
		WaveSpeed:     0.04,
		Damping:       0.001,
		MaxDT:         12,
		MaxIteratedDT: 100,
		SimSpeed:      1,
		Amplitude:     50,
		Sigma:         0.01,
		Workers:       1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values leave the defaults in place; Validate
// decides whether the result is usable.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.N = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	floats := map[string]*float64{
		"w":               &c.Width,
		"h":               &c.Height,
		"c":               &c.WaveSpeed,
		"damping":         &c.Damping,
		"max_dt":          &c.MaxDT,
		"max_iterated_dt": &c.MaxIteratedDT,
		"sim_speed":       &c.SimSpeed,
		"amplitude":       &c.Amplitude,
		"sigma":           &c.Sigma,
	}
	for key, dst := range floats {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	return c
}

// Spacing returns the node spacing implied by the resolution and extent.
func (c Config) Spacing() (dx, dz float64) {
	return c.Width / float64(c.N), c.Height / float64(c.N)
}

// Courant returns the 2D CFL number c*MaxDT*sqrt(1/dx^2 + 1/dz^2). The
// explicit scheme is stable while it stays at or below 1.
func (c Config) Courant() float64 {
	dx, dz := c.Spacing()
	return c.WaveSpeed * c.MaxDT * math.Sqrt(1/(dx*dx)+1/(dz*dz))
}

// Validate reports the first parameter that would produce an invalid or
// unstable simulation.
func (c Config) Validate() error {
	switch {
	case c.N <= 0:
		return fmt.Errorf("%w: n=%d must be positive", ErrConfig, c.N)
	case !positive(c.Width) || !positive(c.Height):
		return fmt.Errorf("%w: extent %gx%g must be positive", ErrConfig, c.Width, c.Height)
	case !positive(c.WaveSpeed):
		return fmt.Errorf("%w: wave speed %g must be positive", ErrConfig, c.WaveSpeed)
	case !nonNegative(c.Damping):
		return fmt.Errorf("%w: damping %g must be non-negative", ErrConfig, c.Damping)
	case !positive(c.MaxDT):
		return fmt.Errorf("%w: max_dt %g must be positive", ErrConfig, c.MaxDT)
	case !positive(c.MaxIteratedDT):
		return fmt.Errorf("%w: max_iterated_dt %g must be positive", ErrConfig, c.MaxIteratedDT)
	case !positive(c.SimSpeed):
		return fmt.Errorf("%w: sim_speed %g must be positive", ErrConfig, c.SimSpeed)
	case math.IsNaN(c.Amplitude) || math.IsInf(c.Amplitude, 0):
		return fmt.Errorf("%w: amplitude %g must be finite", ErrConfig, c.Amplitude)
	case !nonNegative(c.Sigma):
		return fmt.Errorf("%w: sigma %g must be non-negative", ErrConfig, c.Sigma)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers=%d must not be negative", ErrConfig, c.Workers)
	}
	if c.MaxIteratedDT/c.MaxDT > MaxSubSteps {
		return fmt.Errorf("%w: max_iterated_dt/max_dt = %g exceeds %g sub-steps per frame", ErrConfig, c.MaxIteratedDT/c.MaxDT, float64(MaxSubSteps))
	}
	if cfl := c.Courant(); cfl > 1 {
		return fmt.Errorf("%w: max_dt %g gives courant number %.3f > 1 for c=%g", ErrConfig, c.MaxDT, cfl, c.WaveSpeed)
	}
	if c.Damping*c.MaxDT > 1 {
		return fmt.Errorf("%w: damping*max_dt = %g exceeds 1", ErrConfig, c.Damping*c.MaxDT)
	}
	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func nonNegative(v float64) bool { return v >= 0 && !math.IsInf(v, 1) }
