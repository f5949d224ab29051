package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Garsondee/Parris-Island-Trials/internal/audio"
	"github.com/Garsondee/Parris-Island-Trials/internal/config"
	"github.com/Garsondee/Parris-Island-Trials/internal/game"
	"github.com/Garsondee/Parris-Island-Trials/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed; any value given, 0 included, is used as is (default seeds from the OS)")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "start with sound off")
	flag.IntVar(&cfg.MaxCatches, "max-catches", cfg.MaxCatches, "catches before the run is lost")
	flag.Parse()
	cfg.MarkFlagsSet(flag.CommandLine)

	// The terminal is the display, so logs only go to PIT_LOG_FILE.
	logger, closeLog, err := config.SetupLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	sim, err := game.NewSim(append(cfg.SimOptions(), game.WithLogger(logger))...)
	if err != nil {
		return err
	}

	player, err := audio.New(cfg.Mute)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer player.Close()

	app, err := tui.New(sim, tui.WithCues(player), tui.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := app.Run(ctx)
	app.Close()

	fmt.Print(sim.Summary())
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return nil
}
