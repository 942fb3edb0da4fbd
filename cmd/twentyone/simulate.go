package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/twentyone/internal/bot"
	"github.com/lox/twentyone/internal/fileutil"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/simulator"
)

type SimulateCmd struct {
	Matches  int           `short:"n" help:"Number of matches to simulate (default from config)"`
	Workers  int           `short:"w" help:"Parallel workers (default from config)"`
	Strategy string        `short:"s" help:"Bot strategy: dealer, threshold, random (default from config)"`
	StandOn  int           `help:"Total the bot stands on (default from config)"`
	Timeout  time.Duration `help:"Stop after this long (0 for no limit)"`
	Quiet    bool          `short:"q" help:"Hide the progress bar"`
	Output   string        `short:"o" help:"Also write the summary to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.UI, false)
	if err != nil {
		return err
	}
	defer closeLog()

	sim := cfg.Simulation
	if c.Matches > 0 {
		sim.Matches = c.Matches
	}
	if c.Workers > 0 {
		sim.Workers = c.Workers
	}
	if c.Strategy != "" {
		sim.Strategy = c.Strategy
	}
	if c.StandOn > 0 {
		sim.StandOn = c.StandOn
	}
	seed := randutil.Seed(sim.Seed)

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress *ProgressMonitor
	if !c.Quiet {
		progress = NewProgressMonitor(os.Stderr, sim.Matches)
	}

	logger.Info("Starting simulation",
		"matches", sim.Matches,
		"workers", sim.Workers,
		"strategy", sim.Strategy,
		"stand_on", sim.StandOn,
		"seed", seed)

	report, err := simulator.New(simulator.Config{
		Matches:  sim.Matches,
		Workers:  sim.Workers,
		Seed:     seed,
		Rules:    cfg.Rules,
		Strategy: bot.Strategy(sim.Strategy),
		StandOn:  sim.StandOn,
		Timeout:  c.Timeout,
		Logger:   logger,
		OnMatch:  progress.OnMatch,
	}).Run(ctx)
	progress.Finish()
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out := io.Writer(os.Stdout)
	var file *fileutil.AtomicFile
	if c.Output != "" {
		if file, err = fileutil.CreateAtomic(c.Output, 0o644); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}
		defer file.Abort()
		out = io.MultiWriter(os.Stdout, file)
	}

	simulator.PrintSummary(out, report)

	if file != nil {
		if err := file.Commit(); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}
		logger.Info("Saved summary", "path", c.Output)
	}
	return nil
}
