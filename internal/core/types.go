package core

import "sort"

// Size describes the node dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a heightfield simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Advance consumes a wall-clock delta in milliseconds.
	Advance(dt float64) error
	// Heights returns the current heights in row-major order. The slice is
	// owned by the sim and only valid until the next Advance or Perturb.
	Heights() []float64
}

// Perturber is implemented by sims that accept pointer-driven disturbances
// at physical coordinates.
type Perturber interface {
	Perturb(x, z float64) error
	// Extent returns the physical width and depth, centred on the origin.
	Extent() (w, h float64)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats summarises the dynamic state of a sim for overlays and probes.
type Stats struct {
	Energy       float64
	Variance     float64
	MaxAmplitude float64

	// Elapsed is the total simulated time in milliseconds.
	Elapsed  float64
	SubSteps int
	// Clamped reports whether the last frame exceeded the per-frame budget.
	Clamped bool
}

// StatsProvider is implemented by sims that can report Stats.
type StatsProvider interface {
	Stats() Stats
}
