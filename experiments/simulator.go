package experiments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrNoGames = errors.New("number of games must be positive")

type SimOption func(s *Simulator)

// Simulator plays many independent games from a template match. The
// template is only cloned, never played.
type Simulator struct {
	template   *engine.Match
	goroutines int
	metrics    metrics.Collector
}

// WithGoroutines bounds the number of games played at once in parallel mode.
func WithGoroutines(n int) SimOption {
	return func(s *Simulator) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithCollector(c metrics.Collector) SimOption {
	return func(s *Simulator) {
		if c != nil {
			s.metrics = c
		}
	}
}

func NewSimulator(template *engine.Match, options ...SimOption) *Simulator {
	s := &Simulator{ // Default values
		template:   template,
		goroutines: runtime.GOMAXPROCS(0),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

type Result struct {
	Games     int
	FirstWins int
	Elapsed   time.Duration
}

// WinRate returns the share of games won by the first side.
func (r Result) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.FirstWins) / float64(r.Games)
}

func (r Result) PerGame() time.Duration {
	if r.Games == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Games)
}

// Run plays games fresh clones of the template. Any failing game aborts the
// whole run, so a returned Result always covers every game.
func (s *Simulator) Run(ctx context.Context, games int, parallel bool) (Result, error) {
	if games <= 0 {
		return Result{}, ErrNoGames
	}

	start := time.Now()
	var won []bool
	var err error
	if parallel {
		won, err = s.runParallel(ctx, games)
	} else {
		won, err = s.runSequential(ctx, games)
	}
	if err != nil {
		return Result{}, err
	}

	result := Result{Games: games, Elapsed: time.Since(start)}
	for _, w := range won {
		if w {
			result.FirstWins++
		}
	}

	log.Debug().
		Int("games", games).
		Bool("parallel", parallel).
		Int("first-wins", result.FirstWins).
		Dur("elapsed", result.Elapsed).
		Msg("simulation-complete")
	return result, nil
}

func (s *Simulator) runSequential(ctx context.Context, games int) ([]bool, error) {
	won := make([]bool, games)
	for i := range won {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		winner, err := s.playOne(i, s.template.Clone())
		if err != nil {
			return nil, err
		}
		won[i] = winner == game.First
	}
	return won, nil
}

func (s *Simulator) runParallel(ctx context.Context, games int) ([]bool, error) {
	won := make([]bool, games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.goroutines)

	for i := range won {
		if gctx.Err() != nil {
			break
		}
		match := s.template.Clone()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			winner, err := s.playOne(i, match)
			if err != nil {
				return err
			}
			won[i] = winner == game.First
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop early on a cancelled parent without any game failing
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return won, nil
}

func (s *Simulator) playOne(i int, match *engine.Match) (game.Side, error) {
	start := time.Now()
	winner, err := match.Play()
	if err != nil {
		return winner, fmt.Errorf("game %d: %w", i+1, err)
	}
	s.metrics.AddGame(metrics.GameMetric{
		Winner:   winner,
		Plies:    match.Plies(),
		Duration: time.Since(start),
	})
	return winner, nil
}

// Stats returns the first side's win rate over games.
func (s *Simulator) Stats(games int, parallel bool) (float64, error) {
	result, err := s.Run(context.Background(), games, parallel)
	if err != nil {
		return 0, err
	}
	return result.WinRate(), nil
}

// PrintStats runs the simulation and writes both win rates and timings to w.
func (s *Simulator) PrintStats(w io.Writer, games int, parallel bool) error {
	result, err := s.Run(context.Background(), games, parallel)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(w)
	firstPercent := result.WinRate() * 100
	fmt.Fprintf(w, "%s win rate: %.2f%%\n", game.Label(out, game.First), firstPercent)
	fmt.Fprintf(w, "%s win rate: %.2f%%\n", game.Label(out, game.Second), 100-firstPercent)
	fmt.Fprintf(w, "Time / game: %s\n", result.PerGame().Round(10*time.Microsecond))
	fmt.Fprintf(w, "Elapsed time: %s\n", result.Elapsed.Round(10*time.Microsecond))
	return nil
}
