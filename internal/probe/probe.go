// Package probe runs a heightfield sim without a window and records how its
// energy and amplitude evolve frame by frame.
package probe

import (
	"context"
	"fmt"
	"math"

	"ripples/internal/core"
	rng "ripples/pkg/core"
)

// Target is a sim the probe can drive, measure and disturb.
type Target interface {
	core.Sim
	core.StatsProvider
	core.Perturber
}

// Options controls a probe run.
type Options struct {
	Frames  int
	FrameDT float64 // wall-clock milliseconds fed per frame

	// Drops > 0 adds that many random bumps, one every DropEvery frames.
	Drops     int
	DropEvery int
	Seed      int64
}

// DefaultOptions simulates ten seconds at 60 frames per second.
func DefaultOptions() Options {
	return Options{Frames: 600, FrameDT: 1000.0 / 60, DropEvery: 60, Seed: 1}
}

// Sample is the sim state after one frame.
type Sample struct {
	Frame    int
	Time     float64
	Energy   float64
	Variance float64
	Max      float64
	Clamped  bool
}

// Run advances the target frame by frame. The first sample is the state
// before any frame is simulated.
func Run(ctx context.Context, sim Target, opts Options) ([]Sample, error) {
	if opts.Frames < 0 {
		return nil, fmt.Errorf("probe: frames=%d must not be negative", opts.Frames)
	}
	every := opts.DropEvery
	if every <= 0 {
		every = 1
	}
	w, h := sim.Extent()
	r := rng.NewRNG(opts.Seed)
	dropped := 0

	samples := make([]Sample, 0, opts.Frames+1)
	samples = append(samples, sample(0, sim.Stats()))
	for frame := 1; frame <= opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		if dropped < opts.Drops && frame%every == 0 {
			x, z := r.PointIn(w, h, 0.1*math.Min(w, h))
			if err := sim.Perturb(x, z); err != nil {
				return samples, fmt.Errorf("probe: drop %d: %w", dropped, err)
			}
			dropped++
		}
		if err := sim.Advance(opts.FrameDT); err != nil {
			return samples, fmt.Errorf("probe: frame %d: %w", frame, err)
		}
		samples = append(samples, sample(frame, sim.Stats()))
	}
	return samples, nil
}

func sample(frame int, s core.Stats) Sample {
	return Sample{
		Frame:    frame,
		Time:     s.Elapsed,
		Energy:   s.Energy,
		Variance: s.Variance,
		Max:      s.MaxAmplitude,
		Clamped:  s.Clamped,
	}
}

// Summary condenses a run into the numbers used to judge stability.
type Summary struct {
	Frames           int
	SimulatedMillis  float64
	PeakEnergyRatio  float64
	FinalEnergyRatio float64
	PeakAmplitude    float64
	ClampedFrames    int
}

// Summarize reduces samples to a Summary. Energy ratios are relative to the
// first sample.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	first := samples[0]
	last := samples[len(samples)-1]
	s := Summary{
		Frames:          len(samples) - 1,
		SimulatedMillis: last.Time - first.Time,
	}
	var peakEnergy float64
	for _, smp := range samples {
		peakEnergy = math.Max(peakEnergy, smp.Energy)
		s.PeakAmplitude = math.Max(s.PeakAmplitude, smp.Max)
		if smp.Clamped {
			s.ClampedFrames++
		}
	}
	if first.Energy > 0 {
		s.PeakEnergyRatio = peakEnergy / first.Energy
		s.FinalEnergyRatio = last.Energy / first.Energy
	}
	return s
}
