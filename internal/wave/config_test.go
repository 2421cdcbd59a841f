package wave

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 0.2036, cfg.Courant(), 1e-4)

	dx, dz := cfg.Spacing()
	assert.InDelta(t, 200.0/60, dx, 1e-12)
	assert.InDelta(t, 200.0/60, dz, 1e-12)
}

func TestFromMapOverrides(t *testing.T) {
	got := FromMap(map[string]string{
		"n":               "40",
		"w":               "120",
		"h":               "80",
		"c":               "0.05",
		"damping":         "0",
		"max_dt":          "8",
		"max_iterated_dt": "64",
		"sim_speed":       "2.5",
		"amplitude":       "10",
		"sigma":           "0.02",
		"workers":         "3",
	})
	want := Config{
		N:             40,
		Width:         120,
		Height:        80,
		WaveSpeed:     0.05,
		Damping:       0,
		MaxDT:         8,
		MaxIteratedDT: 64,
		SimSpeed:      2.5,
		Amplitude:     10,
		Sigma:         0.02,
		Workers:       3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromMap mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	got := FromMap(map[string]string{
		"n":       "lots",
		"c":       "fast",
		"unknown": "1",
	})
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero n", func(c *Config) { c.N = 0 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero wave speed", func(c *Config) { c.WaveSpeed = 0 }},
		{"negative damping", func(c *Config) { c.Damping = -0.1 }},
		{"nan damping", func(c *Config) { c.Damping = math.NaN() }},
		{"zero max dt", func(c *Config) { c.MaxDT = 0 }},
		{"negative max iterated dt", func(c *Config) { c.MaxIteratedDT = -5 }},
		{"zero sim speed", func(c *Config) { c.SimSpeed = 0 }},
		{"infinite amplitude", func(c *Config) { c.Amplitude = math.Inf(1) }},
		{"negative sigma", func(c *Config) { c.Sigma = -0.01 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"sub-step too small for frame budget", func(c *Config) { c.MaxDT = 1e-15 }},
		{"too many sub-steps", func(c *Config) { c.MaxDT = c.MaxIteratedDT / (MaxSubSteps * 2) }},
		{"courant above one", func(c *Config) { c.MaxDT = 100 }},
		{"fast waves on coarse step", func(c *Config) { c.WaveSpeed = 0.5 }},
		{"heavy damping", func(c *Config) { c.Damping = 0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrConfig)
		})
	}
}

func TestValidateAcceptsStabilityLimit(t *testing.T) {
	cfg := DefaultConfig()
	dx, dz := cfg.Spacing()
	cfg.MaxDT = 1 / (cfg.WaveSpeed * math.Sqrt(1/(dx*dx)+1/(dz*dz)))
	cfg.MaxDT *= 0.999
	require.NoError(t, cfg.Validate())
	assert.Less(t, cfg.Courant(), 1.0)
}

func TestValidateAcceptsSubStepCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDT = 1.01 * cfg.MaxIteratedDT / MaxSubSteps
	require.NoError(t, cfg.Validate())
}
