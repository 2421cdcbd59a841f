package ripple

import (
	"strconv"

	"ripples/internal/core"
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("n", "Resolution", cfg.N),
				floatParam("w", "Width", cfg.Width),
				floatParam("h", "Depth", cfg.Height),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("c", "Wave speed", cfg.WaveSpeed),
				floatParam("damping", "Damping", cfg.Damping),
				floatParam("courant", "Courant number", cfg.Courant()),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				floatParam("max_dt", "Max sub-step (ms)", cfg.MaxDT),
				floatParam("max_iterated_dt", "Max frame time (ms)", cfg.MaxIteratedDT),
				floatParam("sim_speed", "Sim speed", cfg.SimSpeed),
				intParam("workers", "Workers", cfg.Workers),
			},
		},
		{
			Name: "Drops",
			Params: []core.Parameter{
				floatParam("amplitude", "Amplitude", cfg.Amplitude),
				floatParam("sigma", "Sigma", cfg.Sigma),
			},
		},
		{
			Name:    "State",
			Summary: "read-only",
			Params: []core.Parameter{
				floatParam("elapsed", "Simulated (ms)", s.integ.Elapsed()),
				intParam("steps", "Sub-steps", s.integ.Steps()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
