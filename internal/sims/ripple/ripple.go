package ripple

import (
	"errors"
	"fmt"

	"ripples/internal/core"
	"ripples/internal/wave"
)

// ErrUnknownParameter is returned by SetFloatParameter for keys the sim
// does not expose as adjustable.
var ErrUnknownParameter = errors.New("ripple: unknown parameter")

// Sim couples a wave grid with its integrator and implements core.Sim.
type Sim struct {
	cfg   wave.Config
	grid  *wave.Grid
	integ *wave.Integrator

	last wave.AdvanceResult
}

// New builds a ripple sim and applies the initial droplet.
func New(cfg wave.Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := wave.NewGrid(cfg.N, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	integ, err := wave.NewIntegrator(grid, cfg)
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, grid: grid, integ: integ}
	s.Reset(0)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "ripple" }

// Size returns the node count per axis.
func (s *Sim) Size() core.Size {
	n := s.grid.N() + 1
	return core.Size{W: n, H: n}
}

// Config returns the active configuration.
func (s *Sim) Config() wave.Config { return s.cfg }

// Grid exposes the underlying heightfield.
func (s *Sim) Grid() *wave.Grid { return s.grid }

// Integrator exposes the underlying stepper.
func (s *Sim) Integrator() *wave.Integrator { return s.integ }

// LastAdvance reports the outcome of the most recent Advance call.
func (s *Sim) LastAdvance() wave.AdvanceResult { return s.last }

// Reset restores the initial droplet. The simulation is deterministic, so
// the seed is ignored.
func (s *Sim) Reset(int64) {
	s.grid.ApplyInitialCondition(s.cfg.Amplitude, s.cfg.Sigma)
	s.integ.ResetClock()
	s.last = wave.AdvanceResult{}
}

// Advance integrates a wall-clock delta in milliseconds.
func (s *Sim) Advance(dt float64) error {
	res, err := s.integ.Advance(dt)
	if err != nil {
		return err
	}
	s.last = res
	return nil
}

// Heights returns the live height slice in row-major order.
func (s *Sim) Heights() []float64 { return s.grid.Heights() }

// Extent returns the physical width and depth.
func (s *Sim) Extent() (w, h float64) { return s.grid.Extent() }

// Perturb drops a new Gaussian bump of the configured amplitude and spread
// at physical (x, z). Points outside the surface are rejected.
func (s *Sim) Perturb(x, z float64) error {
	if _, _, ok := s.grid.Nearest(x, z); !ok {
		return fmt.Errorf("%w: point (%g,%g) is off the surface", wave.ErrOutOfRange, x, z)
	}
	s.grid.ApplyPerturbation(x, z, s.cfg.Amplitude, s.cfg.Sigma)
	return nil
}

// ParameterControls lists the values the HUD may adjust at runtime.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "sim_speed", Label: "Sim speed", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 8, HasMin: true, HasMax: true},
		{Key: "damping", Label: "Damping", Type: core.ParamTypeFloat, Step: 0.0005, Min: 0, Max: 0.05, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates an adjustable value. The change is validated
// against the stability limits before it takes effect.
func (s *Sim) SetFloatParameter(key string, value float64) error {
	next := s.cfg
	switch key {
	case "sim_speed":
		next.SimSpeed = value
	case "damping":
		next.Damping = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParameter, key)
	}
	if err := s.integ.Reconfigure(next); err != nil {
		return err
	}
	s.cfg = next
	return nil
}

func init() {
	core.Register("ripple", func(cfg map[string]string) (core.Sim, error) {
		return New(wave.FromMap(cfg))
	})
}

// Stats reports energy, spread and timing of the current state.
func (s *Sim) Stats() core.Stats {
	return core.Stats{
		Energy:       wave.Energy(s.grid, s.cfg.WaveSpeed),
		Variance:     wave.Variance(s.grid),
		MaxAmplitude: wave.MaxAmplitude(s.grid),
		Elapsed:      s.integ.Elapsed(),
		SubSteps:     s.last.SubSteps,
		Clamped:      s.last.Clamped,
	}
}
