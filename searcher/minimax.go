package searcher

import "mancala/game"

// Minimax returns a depth-limited search that falls back to evaluate once the
// depth is used up. A terminal board is a loss for the side to move: the
// opponent has just emptied a row and won.
func Minimax(evaluate game.Evaluate) DepthEvaluate {
	return minimax(evaluate, NewDummyCollector())
}

func minimax(evaluate game.Evaluate, metrics Collector) DepthEvaluate {
	var search DepthEvaluate
	search = func(b game.Board, depth int) float64 {
		metrics.AddNode()
		if b.IsTerminal() {
			return Loss
		}
		if depth <= 0 {
			return evaluate(b)
		}

		// Children are scored for the opponent, so the best reply for the
		// side to move is the one that leaves the opponent the lowest score
		lowest := Win
		for _, choice := range b.ValidChoices() {
			child := b
			child.Play(choice)
			if score := search(child, depth-1); score < lowest {
				lowest = score
			}
		}
		return Win - lowest
	}
	return search
}
