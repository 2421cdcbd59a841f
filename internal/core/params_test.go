package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "n", Value: "60"}}},
		{Name: "B", Params: []Parameter{{Key: "c", Value: "0.04"}}},
	}}
	p, ok := snap.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, "0.04", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 0.5, Max: 4, HasMin: true, HasMax: true}
	assert.Equal(t, 0.5, ctrl.Clamp(0.1))
	assert.Equal(t, 4.0, ctrl.Clamp(10))
	assert.Equal(t, 2.0, ctrl.Clamp(2))

	open := ParameterControl{Min: 1, HasMin: true}
	assert.Equal(t, 100.0, open.Clamp(100))
}
