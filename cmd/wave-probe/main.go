package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"ripples/internal/core"
	"ripples/internal/probe"
	"ripples/internal/sims/ripple"
	"ripples/internal/wave"
)

func main() {
	defaults := probe.DefaultOptions()
	frames := flag.Int("frames", defaults.Frames, "frames to simulate")
	frameDT := flag.Float64("frame-dt", defaults.FrameDT, "wall-clock milliseconds fed per frame")
	drops := flag.Int("drops", 0, "random drops to add during the run")
	dropEvery := flag.Int("drop-every", defaults.DropEvery, "frames between random drops")
	seed := flag.Int64("seed", defaults.Seed, "seed for drop placement")
	plotPath := flag.String("plot", "", "write an energy/variance plot to this file (.png, .svg, .pdf)")
	every := flag.Int("print-every", 60, "print one line per this many frames (0 prints only the summary)")
	var overrides core.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg := wave.FromMap(overrides.Map())
	sim, err := ripple.New(cfg)
	if err != nil {
		log.Fatalf("configure: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := probe.Options{
		Frames:    *frames,
		FrameDT:   *frameDT,
		Drops:     *drops,
		DropEvery: *dropEvery,
		Seed:      *seed,
	}
	fmt.Printf("Probing n=%d %gx%g c=%g damping=%g max_dt=%g (courant %.3f), %d frames of %.2fms\n",
		cfg.N, cfg.Width, cfg.Height, cfg.WaveSpeed, cfg.Damping, cfg.MaxDT, cfg.Courant(), opts.Frames, opts.FrameDT)

	samples, err := probe.Run(ctx, sim, opts)
	if err != nil {
		log.Printf("run stopped early: %v", err)
	}
	if *every > 0 {
		for _, s := range samples {
			if s.Frame%*every != 0 {
				continue
			}
			fmt.Printf("frame %5d  t=%8.1fms  energy=%.6g  variance=%.6g  max=%.3f\n",
				s.Frame, s.Time, s.Energy, s.Variance, s.Max)
		}
	}

	sum := probe.Summarize(samples)
	fmt.Printf("\nSimulated %.1fms over %d frames (%d clamped); peak energy x%.3f, final energy x%.3f, peak amplitude %.3f\n",
		sum.SimulatedMillis, sum.Frames, sum.ClampedFrames, sum.PeakEnergyRatio, sum.FinalEnergyRatio, sum.PeakAmplitude)

	if *plotPath != "" {
		if err := probe.WritePlot(*plotPath, samples); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("Wrote %s\n", *plotPath)
	}
}
