package wave

import (
	"fmt"
	"math"
)

// Grid stores the heightfield of an (N+1)x(N+1) node lattice in
// struct-of-arrays form. Node (x, z) lives at offset x + (N+1)*z.
type Grid struct {
	n      int
	stride int

	width, depth   float64
	deltaX, deltaZ float64

	height   []float64
	velocity []float64
	accel    []float64
	next     []float64
}

// NewGrid allocates a flat grid with n cells per axis spanning a w x h
// physical extent centred on the origin.
func NewGrid(n int, w, h float64) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid resolution %d must be positive", ErrConfig, n)
	}
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: extent %gx%g must be positive and finite", ErrConfig, w, h)
	}
	stride := n + 1
	total := stride * stride
	return &Grid{
		n:        n,
		stride:   stride,
		width:    w,
		depth:    h,
		deltaX:   w / float64(n),
		deltaZ:   h / float64(n),
		height:   make([]float64, total),
		velocity: make([]float64, total),
		accel:    make([]float64, total),
		next:     make([]float64, total),
	}, nil
}

// N returns the number of cells per axis; node coordinates run from 0 to N.
func (g *Grid) N() int { return g.n }

// Nodes returns the total node count, (N+1)^2.
func (g *Grid) Nodes() int { return len(g.height) }

// Extent returns the physical width and depth.
func (g *Grid) Extent() (w, h float64) { return g.width, g.depth }

// Spacing returns the physical distance between neighbouring nodes.
func (g *Grid) Spacing() (dx, dz float64) { return g.deltaX, g.deltaZ }

// Index returns the storage offset for node (x, z).
func (g *Grid) Index(x, z int) (int, error) {
	if !g.inRange(x, z) {
		return 0, &RangeError{X: x, Z: z, N: g.n}
	}
	return x + g.stride*z, nil
}

func (g *Grid) inRange(x, z int) bool {
	return x >= 0 && x <= g.n && z >= 0 && z <= g.n
}

// mustIndex is Index for accessors, where a bad coordinate is a caller bug.
func (g *Grid) mustIndex(x, z int) int {
	idx, err := g.Index(x, z)
	if err != nil {
		panic(err)
	}
	return idx
}

// Height returns the current displacement of node (x, z).
func (g *Grid) Height(x, z int) float64 { return g.height[g.mustIndex(x, z)] }

// SetHeight overwrites the displacement of node (x, z).
func (g *Grid) SetHeight(x, z int, v float64) { g.height[g.mustIndex(x, z)] = v }

// Velocity returns the vertical velocity of node (x, z).
func (g *Grid) Velocity(x, z int) float64 { return g.velocity[g.mustIndex(x, z)] }

// SetVelocity overwrites the vertical velocity of node (x, z).
func (g *Grid) SetVelocity(x, z int, v float64) { g.velocity[g.mustIndex(x, z)] = v }

// Acceleration returns the acceleration computed for node (x, z) by the
// most recent step.
func (g *Grid) Acceleration(x, z int) float64 { return g.accel[g.mustIndex(x, z)] }

// SetAcceleration overwrites the stored acceleration of node (x, z).
func (g *Grid) SetAcceleration(x, z int, v float64) { g.accel[g.mustIndex(x, z)] = v }

// NextHeight returns the staged height of node (x, z).
func (g *Grid) NextHeight(x, z int) float64 { return g.next[g.mustIndex(x, z)] }

// SetNextHeight overwrites the staged height of node (x, z).
func (g *Grid) SetNextHeight(x, z int, v float64) { g.next[g.mustIndex(x, z)] = v }

// Position returns the physical coordinates of node (x, z).
func (g *Grid) Position(x, z int) (px, pz float64) {
	return g.coordX(x), g.coordZ(z)
}

func (g *Grid) coordX(x int) float64 {
	return float64(x)*g.width/float64(g.n) - g.width/2
}

func (g *Grid) coordZ(z int) float64 {
	return float64(z)*g.depth/float64(g.n) - g.depth/2
}

// Nearest maps a physical point to the closest node. ok is false when the
// point lies outside the grid's extent.
func (g *Grid) Nearest(px, pz float64) (x, z int, ok bool) {
	if math.IsNaN(px) || math.IsNaN(pz) {
		return 0, 0, false
	}
	if px < -g.width/2 || px > g.width/2 || pz < -g.depth/2 || pz > g.depth/2 {
		return 0, 0, false
	}
	x = int(math.Round((px + g.width/2) / g.deltaX))
	z = int(math.Round((pz + g.depth/2) / g.deltaZ))
	return min(max(x, 0), g.n), min(max(z, 0), g.n), true
}

// IsEdge reports whether node (x, z) lies on the domain boundary.
func (g *Grid) IsEdge(x, z int) bool {
	return x == 0 || z == 0 || x == g.n || z == g.n
}

// Heights exposes the backing height slice in Index order. Callers must
// treat it as read-only.
func (g *Grid) Heights() []float64 { return g.height }

// CopyHeights copies the current heights into dst, growing it if needed,
// and returns the filled slice.
func (g *Grid) CopyHeights(dst []float64) []float64 {
	if cap(dst) < len(g.height) {
		dst = make([]float64, len(g.height))
	}
	dst = dst[:len(g.height)]
	copy(dst, g.height)
	return dst
}

// Flatten zeroes every field.
func (g *Grid) Flatten() {
	clear(g.height)
	clear(g.velocity)
	clear(g.accel)
	clear(g.next)
}

// ApplyInitialCondition sets a Gaussian bump of the given amplitude and
// concentration centred on the origin and puts every node at rest.
func (g *Grid) ApplyInitialCondition(amplitude, sigma float64) {
	for z := 0; z <= g.n; z++ {
		pz := g.coordZ(z)
		ez := math.Exp(-sigma * pz * pz)
		row := z * g.stride
		for x := 0; x <= g.n; x++ {
			px := g.coordX(x)
			g.height[row+x] = amplitude * math.Exp(-sigma*px*px) * ez
		}
	}
	clear(g.velocity)
	clear(g.accel)
	clear(g.next)
}

// ApplyPerturbation adds a Gaussian bump centred at the physical point
// (cx, cz) and then pins the boundary heights back to zero.
func (g *Grid) ApplyPerturbation(cx, cz, amplitude, sigma float64) {
	for z := 0; z <= g.n; z++ {
		dz := g.coordZ(z) - cz
		ez := math.Exp(-sigma * dz * dz)
		row := z * g.stride
		for x := 0; x <= g.n; x++ {
			dx := g.coordX(x) - cx
			g.height[row+x] += amplitude * math.Exp(-sigma*dx*dx) * ez
		}
	}
	g.zeroEdges()
}

func (g *Grid) zeroEdges() {
	last := g.n * g.stride
	for x := 0; x <= g.n; x++ {
		g.height[x] = 0
		g.height[last+x] = 0
	}
	for z := 1; z < g.n; z++ {
		g.height[z*g.stride] = 0
		g.height[z*g.stride+g.n] = 0
	}
}
