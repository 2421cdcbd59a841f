package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64Range returns a random value in [lo, hi).
func (r *RNG) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// PointIn returns a random point inside a w x h rectangle centred on the
// origin, keeping margin away from every edge.
func (r *RNG) PointIn(w, h, margin float64) (x, z float64) {
	x = r.Float64Range(-w/2+margin, w/2-margin)
	z = r.Float64Range(-h/2+margin, h/2-margin)
	return x, z
}
