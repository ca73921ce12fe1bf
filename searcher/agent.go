package searcher

import (
	"sync"
	"time"

	"mancala/game"
	"mancala/meta"

	"github.com/rs/zerolog/log"
)

type Option func(a *Agent)

// Agent picks moves by scoring the board after every valid choice. It holds
// no per-decision state and can serve many matches concurrently.
type Agent struct {
	goroutines int
	duration   time.Duration
	depth      int
	maxDepth   int
	evaluate   game.Evaluate
	metrics    Collector
}

// WithDuration switches the agent to iterative deepening with the given
// budget per evaluated choice.
func WithDuration(duration time.Duration) Option {
	return func(a *Agent) {
		if duration > 0 {
			a.duration = duration
		}
	}
}

// WithDepth sets the fixed search depth, or the deepening cap when a
// duration is set.
func WithDepth(depth int) Option {
	return func(a *Agent) {
		if depth < 0 {
			panic("search depth cannot be negative")
		}
		a.depth = depth
		a.maxDepth = depth
	}
}

// WithGoroutines evaluates up to n choices concurrently.
func WithGoroutines(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.goroutines = n
		}
	}
}

// WithEvaluationFn sets the static evaluation used once the depth is used up.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *Agent) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics(metrics Collector) Option {
	return func(a *Agent) {
		if metrics != nil {
			a.metrics = metrics
		}
	}
}

func NewAgent(options ...Option) *Agent {
	a := &Agent{ // Default values
		goroutines: 1,
		depth:      meta.DEPTH,
		maxDepth:   meta.MAX_DEPTH,
		evaluate:   game.EvaluateSeedRatio,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Evaluator returns the board evaluation the agent applies to each child.
func (a *Agent) Evaluator() game.Evaluate {
	search := minimax(a.evaluate, a.metrics)
	if a.duration > 0 {
		return Deepen(search, a.duration, WithMaxDepth(a.maxDepth), withCollector(a.metrics))
	}
	depth := a.depth
	return func(b game.Board) float64 {
		a.metrics.AddDepth(depth)
		return search(b, depth)
	}
}

// Choose returns the valid choice whose resulting board scores lowest for
// the opponent. Ties go to the lowest choice.
func (a *Agent) Choose(b game.Board) int {
	start := time.Now()
	choices := b.ValidChoices()
	if len(choices) == 0 {
		panic("no valid choices on a terminal board")
	}

	scores := a.scoreChoices(b, choices)

	best := 0
	for i, score := range scores {
		if score < scores[best] {
			best = i
		}
	}

	duration := time.Since(start)
	a.metrics.AddDecision(duration)
	log.Debug().
		Stringer("player", b.Player()).
		Int("choice", choices[best]).
		Float64("opponent-score", scores[best]).
		Dur("duration", duration).
		Msg("agent-chose")
	return choices[best]
}

func (a *Agent) scoreChoices(b game.Board, choices []int) []float64 {
	evaluate := a.Evaluator()
	scores := make([]float64, len(choices))
	score := func(i int) {
		child := b
		child.Play(choices[i])
		scores[i] = evaluate(child)
	}

	if a.goroutines <= 1 {
		for i := range choices {
			score(i)
		}
		return scores
	}

	task := make(chan int, len(choices))
	for i := range choices {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(a.goroutines, len(choices)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				score(i)
			}
		}()
	}

	wg.Wait()
	return scores
}
