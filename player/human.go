package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"mancala/game"
	"mancala/utils"

	"github.com/muesli/termenv"
)

// Human asks for moves on a console. Pits are numbered from 1 for the user.
type Human struct {
	sync.Mutex
	in  *bufio.Scanner
	out io.Writer
	tty *termenv.Output
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
		tty: termenv.NewOutput(out),
	}
}

// Choose prints the board and reads pit numbers until a valid one is given.
// It panics once the input is exhausted since the match cannot continue.
func (h *Human) Choose(b game.Board) int {
	h.Lock()
	defer h.Unlock()

	valid := b.ValidChoices()
	fmt.Fprintln(h.out, b.Render(h.tty))
	fmt.Fprintf(h.out, "Available choices: %v\n", utils.Map(valid, func(choice int) int { return choice + 1 }))
	fmt.Fprintf(h.out, "%s's choice: \n", game.Label(h.tty, b.Player()))

	for h.in.Scan() {
		number, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err == nil && utils.Contains(valid, number-1) {
			return number - 1
		}
		fmt.Fprintln(h.out, "Invalid choice. Please try again.")
	}
	if err := h.in.Err(); err != nil {
		panic(fmt.Sprintf("failed to read choice: %v", err))
	}
	panic("input closed before a valid choice was read")
}
