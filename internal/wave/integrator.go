package wave

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Integrator advances a Grid under the damped wave equation
// y_tt = c^2 (y_xx + y_zz) - damping*y_t using semi-implicit Euler steps.
type Integrator struct {
	grid *Grid
	cfg  Config

	c2     float64
	invDX2 float64
	invDZ2 float64

	// bands partitions the interior rows for the parallel compute phase.
	bands []rowBand

	elapsed float64
	steps   int
}

// rowBand is an inclusive range of interior rows handled by one worker.
type rowBand struct{ start, end int }

// AdvanceResult summarises one Advance call.
type AdvanceResult struct {
	// Requested is the wall-clock delta after the sim-speed multiplier.
	Requested float64
	// Simulated is the total of the sub-step sizes actually integrated.
	Simulated float64
	SubSteps  int
	// Clamped is set when Requested exceeded MaxIteratedDT.
	Clamped bool
}

// NewIntegrator validates cfg against the grid and returns an integrator
// that owns the grid's dynamics.
func NewIntegrator(grid *Grid, cfg Config) (*Integrator, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkGeometry(grid, cfg); err != nil {
		return nil, err
	}
	in := &Integrator{grid: grid}
	in.configure(cfg)
	return in, nil
}

func checkGeometry(grid *Grid, cfg Config) error {
	w, h := grid.Extent()
	if grid.N() != cfg.N || w != cfg.Width || h != cfg.Height {
		return fmt.Errorf("%w: grid n=%d %gx%g does not match config n=%d %gx%g",
			ErrConfig, grid.N(), w, h, cfg.N, cfg.Width, cfg.Height)
	}
	return nil
}

func (in *Integrator) configure(cfg Config) {
	dx, dz := in.grid.Spacing()
	in.cfg = cfg
	in.c2 = cfg.WaveSpeed * cfg.WaveSpeed
	in.invDX2 = 1 / (dx * dx)
	in.invDZ2 = 1 / (dz * dz)
	in.bands = splitRows(in.grid.N(), cfg.Workers)
}

// splitRows divides interior rows 1..n-1 into at most workers bands of
// near-equal height.
func splitRows(n, workers int) []rowBand {
	rows := n - 1
	if rows <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}
	bands := make([]rowBand, 0, workers)
	start := 1
	for i := 0; i < workers; i++ {
		size := rows / workers
		if i < rows%workers {
			size++
		}
		bands = append(bands, rowBand{start: start, end: start + size - 1})
		start += size
	}
	return bands
}

// Config returns the active configuration.
func (in *Integrator) Config() Config { return in.cfg }

// Grid returns the grid being integrated.
func (in *Integrator) Grid() *Grid { return in.grid }

// Elapsed returns the total simulated time since construction or the last
// ResetClock.
func (in *Integrator) Elapsed() float64 { return in.elapsed }

// Steps returns the number of sub-steps taken since construction or the
// last ResetClock.
func (in *Integrator) Steps() int { return in.steps }

// ResetClock zeroes the elapsed time and step counters.
func (in *Integrator) ResetClock() {
	in.elapsed = 0
	in.steps = 0
}

// Reconfigure swaps in a new configuration. The grid geometry must not
// change and the new values must pass Validate.
func (in *Integrator) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkGeometry(in.grid, cfg); err != nil {
		return err
	}
	in.configure(cfg)
	return nil
}

// Step integrates a single sub-step of size dt. It does not apply the
// MaxDT bound; use Advance for wall-clock deltas.
func (in *Integrator) Step(dt float64) error {
	if err := checkDelta(dt); err != nil {
		return err
	}
	in.step(dt)
	return nil
}

// Advance consumes a wall-clock delta: it scales dtTotal by SimSpeed, drops
// anything above MaxIteratedDT and integrates the rest in sub-steps of at
// most MaxDT.
func (in *Integrator) Advance(dtTotal float64) (AdvanceResult, error) {
	if err := checkDelta(dtTotal); err != nil {
		return AdvanceResult{}, err
	}
	remaining := dtTotal * in.cfg.SimSpeed
	res := AdvanceResult{Requested: remaining}
	if remaining > in.cfg.MaxIteratedDT {
		remaining = in.cfg.MaxIteratedDT
		res.Clamped = true
	}
	// The budget shrinks by a full MaxDT per pass; the final pass integrates
	// whatever partial remainder is left and ends the loop.
	for remaining > 0 {
		dt := min(remaining, in.cfg.MaxDT)
		in.step(dt)
		res.Simulated += dt
		res.SubSteps++
		remaining -= in.cfg.MaxDT
	}
	return res, nil
}

func checkDelta(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: time delta %g must be finite and non-negative", ErrInvalidArgument, dt)
	}
	return nil
}

func (in *Integrator) step(dt float64) {
	if len(in.bands) == 0 {
		return
	}
	in.compute(dt)
	in.commit()
	in.elapsed += dt
	in.steps++
}

// compute runs the first phase over every interior node. Heights are only
// read here; results land in next.
func (in *Integrator) compute(dt float64) {
	if len(in.bands) == 1 {
		in.computeBand(in.bands[0], dt)
		return
	}
	var g errgroup.Group
	for _, band := range in.bands {
		g.Go(func() error {
			in.computeBand(band, dt)
			return nil
		})
	}
	// Wait is the barrier between compute and commit.
	_ = g.Wait()
}

func (in *Integrator) computeBand(band rowBand, dt float64) {
	for z := band.start; z <= band.end; z++ {
		in.computeRow(z, dt)
	}
}

func (in *Integrator) computeRow(z int, dt float64) {
	row := z * in.grid.stride
	for x := 1; x < in.grid.n; x++ {
		in.computeNode(row+x, dt)
	}
}

// computeNode applies the finite-difference update to the node at storage
// offset i.
func (in *Integrator) computeNode(i int, dt float64) {
	g := in.grid
	h := g.height
	s := g.stride
	c := h[i]
	d2x := (h[i+1] - 2*c + h[i-1]) * in.invDX2
	d2z := (h[i+s] - 2*c + h[i-s]) * in.invDZ2

	a := in.c2*(d2x+d2z) - in.cfg.Damping*g.velocity[i]
	g.accel[i] = a
	g.velocity[i] += dt * a
	g.next[i] = c + dt*g.velocity[i]
}

// commit copies staged heights into place for interior nodes.
func (in *Integrator) commit() {
	g := in.grid
	for z := 1; z < g.n; z++ {
		row := z * g.stride
		copy(g.height[row+1:row+g.n], g.next[row+1:row+g.n])
	}
}
