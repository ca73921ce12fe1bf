package player

import (
	"mancala/engine"
	"mancala/game"
)

// First always plays the lowest valid choice.
var First = engine.StrategyFunc(func(b game.Board) int {
	return b.ValidChoices()[0]
})

// Last always plays the highest valid choice.
var Last = engine.StrategyFunc(func(b game.Board) int {
	choices := b.ValidChoices()
	return choices[len(choices)-1]
})
