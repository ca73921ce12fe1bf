package searcher

import (
	"math"

	"mancala/game"
)

// Scores are always from the perspective of the side to move
const Win = 1.0
const Loss = 1 - Win

// Epsilon is the distance from Win or Loss at which a score counts as decided
const Epsilon = 1e-9

// DepthEvaluate scores a board by searching the given number of plies.
type DepthEvaluate func(b game.Board, depth int) float64

func isDecided(score float64) bool {
	return math.Abs(score-Win) < Epsilon || math.Abs(score-Loss) < Epsilon
}
