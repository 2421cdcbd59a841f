package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"ripples/internal/core"
	"ripples/internal/probe"
	"ripples/internal/sims/ripple"
	"ripples/internal/wave"
)

type scenarioResult struct {
	maxDT   float64
	courant float64
	summary probe.Summary
	err     error
}

func main() {
	candidates := flag.String("max-dt", "2,4,8,12,24,48,58,60,80", "comma-separated max_dt candidates in milliseconds")
	frames := flag.Int("frames", 600, "frames to simulate per candidate")
	frameDT := flag.Float64("frame-dt", 1000.0/60, "wall-clock milliseconds fed per frame")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var overrides core.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	dts, err := parseList(*candidates)
	if err != nil {
		log.Fatalf("max-dt: %v", err)
	}
	n := workerCount(*workers)
	base := wave.FromMap(overrides.Map())
	opts := probe.Options{Frames: *frames, FrameDT: *frameDT}

	fmt.Printf("Sweeping %d max_dt candidates (%d workers, %d frames)\n", len(dts), n, *frames)

	jobs := make(chan float64)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dt := range jobs {
				results <- runScenario(base, dt, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, dt := range dts {
			jobs <- dt
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].maxDT < all[j].maxDT })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		if res.err != nil {
			fmt.Printf("max_dt=%6.2f courant=%.3f  rejected: %v\n", res.maxDT, res.courant, res.err)
			continue
		}
		s := res.summary
		fmt.Printf("max_dt=%6.2f courant=%.3f  peak energy x%.3f  final energy x%.3f  peak amplitude %.3f\n",
			res.maxDT, res.courant, s.PeakEnergyRatio, s.FinalEnergyRatio, s.PeakAmplitude)
	}
}

// workerCount clamps the requested pool size to at least one worker.
func workerCount(requested int) int {
	return max(1, requested)
}

func runScenario(base wave.Config, maxDT float64, opts probe.Options) scenarioResult {
	cfg := base
	cfg.MaxDT = maxDT
	res := scenarioResult{maxDT: maxDT, courant: cfg.Courant()}
	sim, err := ripple.New(cfg)
	if err != nil {
		res.err = err
		return res
	}
	samples, err := probe.Run(context.Background(), sim, opts)
	if err != nil {
		res.err = err
		return res
	}
	res.summary = probe.Summarize(samples)
	return res
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("candidate %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no candidates given")
	}
	return out, nil
}
