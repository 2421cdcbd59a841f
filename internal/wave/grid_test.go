package wave

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(60, 200, 200)
	require.NoError(t, err)
	return g
}

// recoverError runs f and returns the error value it panicked with, if any.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestNewGridRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name string
		n    int
		w, h float64
	}{
		{"zero resolution", 0, 10, 10},
		{"negative resolution", -4, 10, 10},
		{"zero width", 4, 0, 10},
		{"negative depth", 4, 10, -1},
		{"nan width", 4, math.NaN(), 10},
		{"infinite depth", 4, 10, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.n, tc.w, tc.h)
			require.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestIndexIsBijective(t *testing.T) {
	g, err := NewGrid(7, 10, 10)
	require.NoError(t, err)
	seen := make(map[int]bool, g.Nodes())
	for z := 0; z <= g.N(); z++ {
		for x := 0; x <= g.N(); x++ {
			idx, err := g.Index(x, z)
			require.NoError(t, err)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, g.Nodes())
			require.False(t, seen[idx], "offset %d reused by (%d,%d)", idx, x, z)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, 64)
}

func TestIndexOutOfRange(t *testing.T) {
	g, err := NewGrid(4, 10, 10)
	require.NoError(t, err)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {5, 5}} {
		_, err := g.Index(p[0], p[1])
		require.ErrorIs(t, err, ErrOutOfRange)
		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, p[0], rangeErr.X)
		assert.Equal(t, p[1], rangeErr.Z)
	}
}

func TestAccessorsPanicOutOfRange(t *testing.T) {
	g, err := NewGrid(4, 10, 10)
	require.NoError(t, err)
	accessors := map[string]func(){
		"height":       func() { g.Height(5, 0) },
		"setHeight":    func() { g.SetHeight(0, -1, 1) },
		"velocity":     func() { g.Velocity(-1, 2) },
		"setVelocity":  func() { g.SetVelocity(2, 9, 1) },
		"acceleration": func() { g.Acceleration(7, 7) },
		"setAccel":     func() { g.SetAcceleration(0, 5, 1) },
		"next":         func() { g.NextHeight(5, 5) },
		"setNext":      func() { g.SetNextHeight(-3, 0, 1) },
	}
	for name, f := range accessors {
		err := recoverError(f)
		require.ErrorIs(t, err, ErrOutOfRange, name)
	}
}

func TestAccessorsRoundTrip(t *testing.T) {
	g, err := NewGrid(4, 10, 10)
	require.NoError(t, err)
	g.SetHeight(1, 2, 3)
	g.SetVelocity(1, 2, 4)
	g.SetAcceleration(1, 2, 5)
	g.SetNextHeight(1, 2, 6)
	assert.Equal(t, 3.0, g.Height(1, 2))
	assert.Equal(t, 4.0, g.Velocity(1, 2))
	assert.Equal(t, 5.0, g.Acceleration(1, 2))
	assert.Equal(t, 6.0, g.NextHeight(1, 2))
	assert.Zero(t, g.Height(2, 1))

	g.Flatten()
	assert.Zero(t, g.Height(1, 2))
	assert.Zero(t, g.Velocity(1, 2))
}

func TestInitialCondition(t *testing.T) {
	g := newTestGrid(t)
	g.ApplyInitialCondition(50, 0.01)

	assert.InDelta(t, 50, g.Height(30, 30), 1e-9)
	assert.InDelta(t, 0, g.Height(0, 30), 1e-12)
	assert.InDelta(t, 0, g.Height(60, 30), 1e-12)
	assert.InDelta(t, 0, g.Height(30, 0), 1e-12)
	assert.InDelta(t, 0, g.Height(30, 60), 1e-12)

	px, pz := g.Position(37, 24)
	want := 50 * math.Exp(-0.01*px*px) * math.Exp(-0.01*pz*pz)
	assert.InDelta(t, want, g.Height(37, 24), 1e-12)

	for z := 0; z <= g.N(); z++ {
		for x := 0; x <= g.N(); x++ {
			require.Zero(t, g.Velocity(x, z))
			require.Zero(t, g.Acceleration(x, z))
		}
	}
}

func TestInitialConditionResetsMotion(t *testing.T) {
	g := newTestGrid(t)
	g.SetVelocity(10, 10, 3)
	g.SetAcceleration(10, 10, 3)
	g.ApplyInitialCondition(50, 0.01)
	assert.Zero(t, g.Velocity(10, 10))
	assert.Zero(t, g.Acceleration(10, 10))
}

func TestPerturbationOnFlatGrid(t *testing.T) {
	g := newTestGrid(t)
	g.ApplyPerturbation(0, 0, 50, 0.01)

	assert.Equal(t, 50.0, g.Height(30, 30))
	for i := 0; i <= g.N(); i++ {
		require.Zero(t, g.Height(i, 0))
		require.Zero(t, g.Height(i, g.N()))
		require.Zero(t, g.Height(0, i))
		require.Zero(t, g.Height(g.N(), i))
	}
}

func TestPerturbationAddsToExistingHeights(t *testing.T) {
	g := newTestGrid(t)
	g.ApplyInitialCondition(50, 0.01)
	before := g.CopyHeights(nil)
	g.SetVelocity(12, 12, 2)

	g.ApplyPerturbation(0, 0, 50, 0.01)

	idx, err := g.Index(30, 30)
	require.NoError(t, err)
	assert.InDelta(t, before[idx]+50, g.Height(30, 30), 1e-9)
	assert.Equal(t, 2.0, g.Velocity(12, 12), "perturbation must not touch velocity")
}

func TestPerturbationOffCentre(t *testing.T) {
	g := newTestGrid(t)
	cx, cz := g.Position(45, 15)
	g.ApplyPerturbation(cx, cz, 20, 0.01)

	assert.InDelta(t, 20, g.Height(45, 15), 1e-9)
	assert.Less(t, g.Height(30, 30), 1e-6)
}

func TestNearest(t *testing.T) {
	g := newTestGrid(t)

	x, z, ok := g.Nearest(0, 0)
	require.True(t, ok)
	assert.Equal(t, [2]int{30, 30}, [2]int{x, z})

	x, z, ok = g.Nearest(-100, 100)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 60}, [2]int{x, z})

	x, z, ok = g.Nearest(4.9, -1.6)
	require.True(t, ok)
	assert.Equal(t, [2]int{31, 30}, [2]int{x, z})

	_, _, ok = g.Nearest(100.5, 0)
	assert.False(t, ok)
	_, _, ok = g.Nearest(math.NaN(), 0)
	assert.False(t, ok)
}

func TestIsEdge(t *testing.T) {
	g, err := NewGrid(4, 10, 10)
	require.NoError(t, err)
	assert.True(t, g.IsEdge(0, 2))
	assert.True(t, g.IsEdge(4, 2))
	assert.True(t, g.IsEdge(2, 0))
	assert.True(t, g.IsEdge(2, 4))
	assert.False(t, g.IsEdge(2, 2))
	assert.False(t, g.IsEdge(1, 3))
}

func TestCopyHeightsIsSnapshot(t *testing.T) {
	g := newTestGrid(t)
	g.ApplyInitialCondition(50, 0.01)
	snap := g.CopyHeights(make([]float64, 3))
	require.Len(t, snap, g.Nodes())

	g.SetHeight(30, 30, -1)
	idx, _ := g.Index(30, 30)
	assert.InDelta(t, 50, snap[idx], 1e-9)
	assert.Equal(t, -1.0, g.Heights()[idx])
}
