package searcher

import (
	"testing"

	"mancala/game"

	"github.com/stretchr/testify/require"
)

// countingEvaluate records how often the static evaluation runs
type countingEvaluate struct {
	score float64
	calls int
}

func (c *countingEvaluate) evaluate(game.Board) float64 {
	c.calls++
	return c.score
}

func TestMinimax(t *testing.T) {
	t.Run("terminal board is a loss without evaluating", func(t *testing.T) {
		var pits [game.NumSlots]uint8
		pits[0] = 3
		static := &countingEvaluate{score: 0.7}

		got := Minimax(static.evaluate)(game.FromPits(pits), 5)

		require.Equal(t, Loss, got, "Terminal board should score a loss for the side to move")
		require.Zero(t, static.calls, "Terminal board should not be evaluated")
	})

	t.Run("depth zero delegates to the static evaluation", func(t *testing.T) {
		static := &countingEvaluate{score: 0.37}

		got := Minimax(static.evaluate)(game.NewBoard(), 0)

		require.Equal(t, 0.37, got, "Score should be passed through unchanged")
		require.Equal(t, 1, static.calls)
	})

	t.Run("depth one complements the lowest child", func(t *testing.T) {
		static := &countingEvaluate{score: 0.3}

		got := Minimax(static.evaluate)(game.NewBoard(), 1)

		require.InDelta(t, 0.7, got, 1e-9)
		require.Equal(t, 6, static.calls, "Every child should be evaluated once")
	})

	t.Run("reaching a terminal child is a win", func(t *testing.T) {
		var pits [game.NumSlots]uint8
		pits[2] = 1
		pits[8] = 4

		got := Minimax(game.EvaluateConstant(0.5))(game.FromPits(pits), 1)

		require.Equal(t, Win, got, "Emptying the own row should win")
	})

	t.Run("seed ratio from the starting position", func(t *testing.T) {
		search := Minimax(game.EvaluateSeedRatio)

		require.InDelta(t, 0.5, search(game.NewBoard(), 0), 1e-9)
		require.InDelta(t, 0.5797101449275363, search(game.NewBoard(), 1), 1e-9)
		require.InDelta(t, 0.4857142857142857, search(game.NewBoard(), 2), 1e-9)
		require.InDelta(t, 0.7, search(game.NewBoard(), 3), 1e-9)
	})

	t.Run("scores stay within bounds", func(t *testing.T) {
		search := Minimax(game.EvaluateSeedRatio)
		b := game.NewBoard()
		for _, choice := range []int{5, 3, 1} {
			b.Play(choice)
			score := search(b, 2)
			require.GreaterOrEqual(t, score, Loss)
			require.LessOrEqual(t, score, Win)
		}
	})

	t.Run("counts visited nodes", func(t *testing.T) {
		metrics := NewCollector()

		minimax(game.EvaluateConstant(0.5), metrics)(game.NewBoard(), 1)

		require.Equal(t, int64(7), metrics.Complete().Nodes, "Root and six children should be visited")
	})

	t.Run("does not modify the searched board", func(t *testing.T) {
		b := game.NewBoard()

		Minimax(game.EvaluateSeedRatio)(b, 3)

		require.Equal(t, game.NewBoard().Pits(), b.Pits())
	})
}
