package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mancala/experiments"
	"mancala/meta"

	"github.com/rs/zerolog"
)

const HumanKind = "human"

// Modes of the entry point
const (
	StatsMode      = "stats"
	PlayMode       = "play"
	ExperimentMode = "experiment"
)

var errUsage = errors.New("invalid usage")

type config struct {
	mode       string
	games      int
	parallel   bool
	goroutines int
	duration   time.Duration
	depth      int
	seed       uint64
	first      string
	second     string
	experiment string
	out        string
	logLevel   zerolog.Level
}

// parseConfig reads flags from args. Every flag defaults to its MANCALA_*
// environment variable when that is set.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (config, error) {
	var errs []error
	env := func(key string) (string, bool) {
		v := strings.TrimSpace(getenv("MANCALA_" + key))
		return v, v != ""
	}
	envString := func(key, def string) string {
		if v, ok := env(key); ok {
			return v
		}
		return def
	}
	envInt := func(key string, def int) int {
		v, ok := env(key)
		if !ok {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("MANCALA_%s: %w", key, err))
			return def
		}
		return n
	}
	envBool := func(key string, def bool) bool {
		v, ok := env(key)
		if !ok {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("MANCALA_%s: %w", key, err))
			return def
		}
		return b
	}
	envDuration := func(key string, def time.Duration) time.Duration {
		v, ok := env(key)
		if !ok {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("MANCALA_%s: %w", key, err))
			return def
		}
		return d
	}

	var cfg config
	var seed int
	var level string
	fs := flag.NewFlagSet("mancala", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.mode, "mode", envString("MODE", StatsMode), "stats, play or experiment")
	fs.IntVar(&cfg.games, "games", envInt("GAMES", meta.GAMES), "Number of simulated games")
	fs.BoolVar(&cfg.parallel, "parallel", envBool("PARALLEL", true), "Simulate games in parallel")
	fs.IntVar(&cfg.goroutines, "goroutines", envInt("GOROUTINES", meta.GO_ROUTINES), "Goroutines per simulation or search")
	fs.DurationVar(&cfg.duration, "duration", envDuration("DURATION", 0), "Time budget per evaluated move, 0 searches at a fixed depth")
	fs.IntVar(&cfg.depth, "depth", envInt("DEPTH", meta.DEPTH), "Search depth, or the deepening limit with a duration")
	fs.IntVar(&seed, "seed", envInt("SEED", 0), "Seed of random strategies, 0 draws from a crypto source")
	fs.StringVar(&cfg.first, "first", envString("FIRST", experiments.AIKind), "Strategy of the first side: random, first, last, ai or human")
	fs.StringVar(&cfg.second, "second", envString("SECOND", experiments.RandomKind), "Strategy of the second side: random, first, last, ai or human")
	fs.StringVar(&cfg.experiment, "experiment", envString("EXPERIMENT", "depth"), "Experiment to run: depth or budget")
	fs.StringVar(&cfg.out, "out", envString("OUT", "experiments"), "Root directory of experiment results")
	fs.StringVar(&level, "log-level", envString("LOG_LEVEL", "info"), "Log level")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if seed < 0 {
		return cfg, fmt.Errorf("%w: seed must not be negative", errUsage)
	}
	cfg.seed = uint64(seed)

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.logLevel = parsed

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.mode {
	case StatsMode, PlayMode, ExperimentMode:
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, c.mode)
	}
	for _, kind := range []string{c.first, c.second} {
		if !isKind(kind) {
			return fmt.Errorf("%w: unknown strategy %q", errUsage, kind)
		}
	}
	if c.mode == StatsMode && (c.first == HumanKind || c.second == HumanKind) {
		return fmt.Errorf("%w: human players cannot be simulated", errUsage)
	}
	if c.experiment != "depth" && c.experiment != "budget" {
		return fmt.Errorf("%w: unknown experiment %q", errUsage, c.experiment)
	}
	if c.games <= 0 {
		return fmt.Errorf("%w: games must be positive", errUsage)
	}
	if c.goroutines <= 0 {
		return fmt.Errorf("%w: goroutines must be positive", errUsage)
	}
	if c.depth < 0 {
		return fmt.Errorf("%w: depth must not be negative", errUsage)
	}
	return nil
}

func isKind(kind string) bool {
	switch kind {
	case experiments.RandomKind, experiments.FirstKind, experiments.LastKind, experiments.AIKind, HumanKind:
		return true
	}
	return false
}
