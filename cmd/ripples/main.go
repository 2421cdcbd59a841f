//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ripples/internal/app"
	"ripples/internal/core"
	_ "ripples/internal/sims/ripple"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	sim, err := factory(cfg.Overrides.Map())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("ripples: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
