package engine

import (
	"errors"

	"mancala/game"
)

var (
	ErrInvalidChoice = errors.New("strategy returned an invalid choice")
	ErrGameOver      = errors.New("game is over - no moves allowed")
)

// Strategy picks a move for the side to move on b. The returned choice must
// be one of b.ValidChoices(). Strategies are shared by concurrently running
// matches and must not keep unsynchronized mutable state.
type Strategy interface {
	Choose(b game.Board) int
}

// StrategyFunc adapts a plain function to a Strategy.
type StrategyFunc func(b game.Board) int

func (f StrategyFunc) Choose(b game.Board) int {
	return f(b)
}

// Cloner is implemented by strategies that need an independent copy per
// match, for example to own a seeded random source.
type Cloner interface {
	Clone() Strategy
}

func clone(s Strategy) Strategy {
	if c, ok := s.(Cloner); ok {
		return c.Clone()
	}
	return s
}
