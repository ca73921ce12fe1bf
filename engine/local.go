package engine

import (
	"fmt"
	"io"

	"mancala/game"
	"mancala/utils"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
)

// Match plays one game between two strategies, the first one seated on the
// first side of the board.
type Match struct {
	board      game.Board
	strategies [2]Strategy
	plies      int
}

func NewMatch(first, second Strategy) *Match {
	if first == nil || second == nil {
		panic("match needs two strategies")
	}
	return &Match{
		board:      game.NewBoard(),
		strategies: [2]Strategy{first, second},
	}
}

// SetBoard replaces the position the match starts from.
func (m *Match) SetBoard(b game.Board) {
	m.board = b
}

func (m *Match) Board() game.Board {
	return m.board
}

// Plies returns the number of moves played so far.
func (m *Match) Plies() int {
	return m.plies
}

// Clone returns a match with its own copy of the board. Strategies that
// implement Cloner are cloned too, others are shared.
func (m *Match) Clone() *Match {
	return &Match{
		board:      m.board,
		strategies: [2]Strategy{clone(m.strategies[0]), clone(m.strategies[1])},
		plies:      m.plies,
	}
}

func (m *Match) strategy(side game.Side) Strategy {
	if side == game.First {
		return m.strategies[0]
	}
	return m.strategies[1]
}

// Play runs the game to completion and returns the winner: the side whose
// move left a row empty.
func (m *Match) Play() (game.Side, error) {
	return m.play(nil)
}

// PrintPlay is Play that also writes every move and the resulting board to w.
func (m *Match) PrintPlay(w io.Writer) (game.Side, error) {
	out := termenv.NewOutput(w)
	winner, err := m.play(func(side game.Side, choice int) {
		fmt.Fprintf(w, "%s: %d\n", game.Label(out, side), choice+1)
		fmt.Fprintf(w, "%d: %s\n\n", m.plies, m.board.Render(out))
	})
	if err != nil {
		return winner, err
	}
	fmt.Fprintf(w, "%s won!\n", game.Label(out, winner))
	return winner, nil
}

func (m *Match) play(onMove func(side game.Side, choice int)) (game.Side, error) {
	if m.board.IsTerminal() {
		return m.board.Player(), ErrGameOver
	}

	for {
		side := m.board.Player()
		choice := m.strategy(side).Choose(m.board)

		valid := m.board.ValidChoices()
		if !utils.Contains(valid, choice) {
			return side, fmt.Errorf("%w: %s chose %d, valid choices are %v", ErrInvalidChoice, side, choice, valid)
		}

		m.board.Play(choice)
		m.plies++
		log.Debug().
			Int("ply", m.plies).
			Stringer("player", side).
			Int("choice", choice).
			Stringer("board", m.board).
			Msg("move-played")
		if onMove != nil {
			onMove(side, choice)
		}

		if m.board.IsTerminal() {
			return side, nil
		}
	}
}
