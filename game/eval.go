package game

// EvaluateSeedRatio scores a board by the share of row seeds held by the
// opponent of the side to move. The game ends as soon as one row is empty and
// the side that emptied it wins, so holding fewer seeds is favorable.
func EvaluateSeedRatio(b Board) float64 {
	current := sum(b.CurrentSide())
	opponent := sum(b.OpponentSide())
	return normalize(opponent, current)
}

// EvaluateConstant returns an evaluator that always reports the same score.
func EvaluateConstant(score float64) Evaluate {
	return func(Board) float64 {
		return score
	}
}

// Resolution of the scores produced by EvaluateRandom.
const randomResolution = 1 << 20

// EvaluateRandom returns an evaluator that draws a uniform score from src.
// The source must be safe for the callers that share the evaluator.
func EvaluateRandom(src Source) Evaluate {
	return func(Board) float64 {
		return float64(src.Intn(randomResolution+1)) / randomResolution
	}
}

func sum(row [PitsPerSide]uint8) float64 {
	total := 0.0
	for _, seeds := range row {
		total += float64(seeds)
	}
	return total
}

// normalize returns the share of value in value+otherValue, or 0.5 if both are 0
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0.5
	}
	return value / total
}
