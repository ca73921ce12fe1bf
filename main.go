package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"mancala/engine"
	"mancala/experiments"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/player"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env is fine, the environment and flags still apply
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.logLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Str("mode", cfg.mode).Msg("run-failed")
	}
}

func run(ctx context.Context, cfg config) error {
	switch cfg.mode {
	case PlayMode:
		match := engine.NewMatch(newStrategy(cfg, cfg.first, 0), newStrategy(cfg, cfg.second, 1))
		_, err := match.PrintPlay(os.Stdout)
		return err
	case ExperimentMode:
		return runExperiment(ctx, cfg)
	default:
		match := engine.NewMatch(newStrategy(cfg, cfg.first, 0), newStrategy(cfg, cfg.second, 1))
		sim := experiments.NewSimulator(match, experiments.WithGoroutines(cfg.goroutines))
		return sim.PrintStats(os.Stdout, cfg.games, cfg.parallel)
	}
}

func runExperiment(ctx context.Context, cfg config) error {
	writer, err := metrics.NewWriter(cfg.out, cfg.experiment)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	if cfg.experiment == "budget" {
		_, err = experiments.RunBudgetExperiment(ctx, cfg.games, writer)
	} else {
		_, err = experiments.RunDepthExperiment(ctx, cfg.games, writer)
	}
	return err
}

// newStrategy builds the strategy named kind. offset keeps the seeds of the
// two sides apart.
func newStrategy(cfg config, kind string, offset uint64) engine.Strategy {
	if kind == HumanKind {
		return player.NewHuman(os.Stdin, os.Stdout)
	}

	agent := metrics.AgentConfig{
		Kind:       kind,
		Depth:      cfg.depth,
		Duration:   cfg.duration,
		Goroutines: cfg.goroutines,
	}
	if cfg.seed > 0 {
		agent.Seed = cfg.seed + offset
	}
	log.Debug().Str("side", game.Side(offset == 0).String()).Interface("agent", agent).Msg("strategy-created")
	return experiments.NewStrategy(agent)
}
