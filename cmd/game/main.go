package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Parris-Island-Trials/internal/audio"
	"github.com/Garsondee/Parris-Island-Trials/internal/config"
	"github.com/Garsondee/Parris-Island-Trials/internal/game"
	"github.com/Garsondee/Parris-Island-Trials/internal/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Load()
	fs := flag.NewFlagSet("parris-island", flag.ContinueOnError)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed; any value given, 0 included, is used as is (default seeds from the OS)")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "start with sound off")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale")
	fs.IntVar(&cfg.MaxCatches, "max-catches", cfg.MaxCatches, "catches before the run is lost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.MarkFlagsSet(fs)

	logger, closeLog, err := config.SetupLogger(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("logging setup: %w", err)
	}
	defer func() { _ = closeLog() }()

	sim, err := game.NewSim(append(cfg.SimOptions(), game.WithLogger(logger))...)
	if err != nil {
		logger.Error("cannot start run", "error", err)
		return err
	}

	player, err := audio.New(cfg.Mute)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer player.Close()

	g := render.New(sim, render.WithCues(player), render.WithLogger(logger))
	t := sim.Tuning()
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	ebiten.SetWindowTitle("Parris Island Trials")
	ebiten.SetWindowSize(int(float64(t.ViewWidth)*cfg.Scale), int(float64(t.ViewHeight)*cfg.Scale))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "error", err)
		return err
	}
	logger.Info("run ended", "outcome", sim.Outcome().String(), "run", sim.RunID.String())
	return nil
}
