package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 16; i++ {
		ax, az := a.PointIn(200, 100, 10)
		bx, bz := b.PointIn(200, 100, 10)
		assert.Equal(t, ax, bx)
		assert.Equal(t, az, bz)
	}
}

func TestPointInRespectsMargin(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		x, z := r.PointIn(200, 100, 10)
		assert.GreaterOrEqual(t, x, -90.0)
		assert.Less(t, x, 90.0)
		assert.GreaterOrEqual(t, z, -40.0)
		assert.Less(t, z, 40.0)
	}
}

func TestFloat64RangeDegenerate(t *testing.T) {
	r := NewRNG(1)
	assert.Equal(t, 3.0, r.Float64Range(3, 3))
	assert.Equal(t, 5.0, r.Float64Range(5, 1))
}
