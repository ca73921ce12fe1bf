package game

// Side selects one of the two rows of the board.
type Side bool

const (
	// First is the side that moves first on a standard board.
	First Side = true
	// Second is the side that replies.
	Second Side = false
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return !s
}

// Number returns 1 for the first side and 2 for the second.
func (s Side) Number() int {
	if s == First {
		return 1
	}
	return 2
}

func (s Side) String() string {
	if s == First {
		return "Player 1"
	}
	return "Player 2"
}

type StateHash uint64

// Evaluates a board to a score between 0 and 1 indicating how favorable the
// position is for the side to move (1 is a certain win, 0 a certain loss).
type Evaluate func(Board) float64

// Source is a pseudo-random source injected into randomized strategies and
// evaluators. Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}
