package searcher

import (
	"testing"
	"time"

	"mancala/game"

	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		a := NewAgent()

		require.Equal(t, 1, a.goroutines)
		require.Zero(t, a.duration)
		require.NotNil(t, a.evaluate)
		require.NotNil(t, a.metrics)
	})

	t.Run("ignores non-positive values", func(t *testing.T) {
		a := NewAgent(WithGoroutines(0), WithDuration(-time.Second), WithEvaluationFn(nil), WithMetrics(nil))

		require.Equal(t, 1, a.goroutines)
		require.Zero(t, a.duration)
		require.NotNil(t, a.evaluate)
		require.NotNil(t, a.metrics)
	})

	t.Run("panics with negative depth", func(t *testing.T) {
		require.Panics(t, func() {
			NewAgent(WithDepth(-1))
		}, "Should panic when depth is negative")
	})
}

func TestAgentChoose(t *testing.T) {
	t.Run("picks the choice that leaves the opponent the lowest score", func(t *testing.T) {
		target := game.NewBoard()
		target.Play(3)
		evaluate := func(b game.Board) float64 {
			if b.Equal(target) {
				return 0.1
			}
			return 0.9
		}

		for _, goroutines := range []int{1, 4} {
			a := NewAgent(WithDepth(0), WithEvaluationFn(evaluate), WithGoroutines(goroutines))
			require.Equal(t, 3, a.Choose(game.NewBoard()), "Goroutines: %d", goroutines)
		}
	})

	t.Run("picks the winning move", func(t *testing.T) {
		pits := [game.NumSlots]uint8{0, 0, 0, 34, 0, 1, 1, 2, 0, 1, 33, 0, 0, 0}
		b := game.FromPits(pits)
		require.Equal(t, []int{4, 5}, b.ValidChoices())

		a := NewAgent(WithDepth(1), WithEvaluationFn(game.EvaluateConstant(Loss)))

		require.Equal(t, 4, a.Choose(b), "Emptying the own row should be preferred")
	})

	t.Run("ties go to the lowest choice", func(t *testing.T) {
		a := NewAgent(WithDepth(0), WithEvaluationFn(game.EvaluateConstant(0.5)))

		require.Equal(t, 0, a.Choose(game.NewBoard()))
	})

	t.Run("seed ratio at depth two from the starting position", func(t *testing.T) {
		sequential := NewAgent(WithDepth(2))
		parallel := NewAgent(WithDepth(2), WithGoroutines(6))

		require.Equal(t, 1, sequential.Choose(game.NewBoard()))
		require.Equal(t, 1, parallel.Choose(game.NewBoard()))
	})

	t.Run("parallel evaluation matches sequential evaluation", func(t *testing.T) {
		sequential := NewAgent(WithDepth(3))
		parallel := NewAgent(WithDepth(3), WithGoroutines(3))

		b := game.NewBoard()
		for i := 0; i < 10 && !b.IsTerminal(); i++ {
			choice := sequential.Choose(b)
			require.Equal(t, choice, parallel.Choose(b), "Ply %d on %s", i, b)
			b.Play(choice)
		}
	})

	t.Run("always returns a valid choice under a time budget", func(t *testing.T) {
		metrics := NewCollector()
		a := NewAgent(WithDuration(time.Millisecond), WithDepth(6), WithGoroutines(2), WithMetrics(metrics))

		b := game.NewBoard()
		plies := 0
		for !b.IsTerminal() && plies < 20 {
			choice := a.Choose(b)
			require.True(t, b.IsValid(choice), "Choice %d should be valid on %s", choice, b)
			b.Play(choice)
			plies++
		}

		metric := metrics.Complete()
		require.Equal(t, int64(plies), metric.Decisions)
		require.Positive(t, metric.Nodes)
		require.LessOrEqual(t, metric.MaxDepth, 6, "Deepening should stop at the configured depth")
	})

	t.Run("panics on a terminal board", func(t *testing.T) {
		require.Panics(t, func() {
			NewAgent().Choose(game.Board{})
		})
	})
}

func TestCollector(t *testing.T) {
	metrics := NewCollector()

	metrics.AddNode()
	metrics.AddNode()
	metrics.AddDepth(3)
	metrics.AddDepth(1)
	metrics.AddDecision(time.Second)
	metrics.AddDecision(2 * time.Second)

	require.Equal(t, SearchMetric{
		Decisions: 2,
		Nodes:     2,
		MaxDepth:  3,
		Duration:  3 * time.Second,
	}, metrics.Complete())

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}
