package searcher

import (
	"math"
	"time"

	"mancala/game"
)

type DeepenOption func(d *deepening)

type deepening struct {
	maxDepth int
	metrics  Collector
}

// WithMaxDepth stops deepening after the given depth even if budget is left.
func WithMaxDepth(depth int) DeepenOption {
	return func(d *deepening) {
		if depth >= 0 {
			d.maxDepth = depth
		}
	}
}

func withCollector(metrics Collector) DeepenOption {
	return func(d *deepening) {
		d.metrics = metrics
	}
}

// Deepen re-runs evaluate at depth 0, 1, 2, ... until budget has elapsed or
// the score is decided, and returns the last score. The budget is only
// checked between depths, so a call overruns it by at most one depth.
func Deepen(evaluate DepthEvaluate, budget time.Duration, options ...DeepenOption) game.Evaluate {
	d := &deepening{
		maxDepth: math.MaxInt,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(d)
	}

	return func(b game.Board) float64 {
		start := time.Now()
		depth := 0
		score := evaluate(b, depth)
		for !isDecided(score) && depth < d.maxDepth && time.Since(start) < budget {
			depth++
			score = evaluate(b, depth)
		}
		d.metrics.AddDepth(depth)
		return score
	}
}
