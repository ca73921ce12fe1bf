package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

const (
	NumSlots    = 14
	PitsPerSide = 6
	StartSeeds  = 6
)

// Store slots. Seeds are sown into them but never out of them.
const (
	FirstStore  = 3
	SecondStore = 10
)

// pitIndex maps a relative choice of a side to its absolute slot, with the
// second side in row 0 and the first side in row 1.
var pitIndex = [2][PitsPerSide]int{
	{7, 8, 9, 11, 12, 13},
	{0, 1, 2, 4, 5, 6},
}

func row(side Side) int {
	if side == First {
		return 1
	}
	return 0
}

// Board holds the seed count of every slot and the side to move. It is a
// plain value: assigning it copies the whole position.
type Board struct {
	pits  [NumSlots]uint8
	first bool
}

// NewBoard returns the starting position with the first side to move.
func NewBoard() Board {
	var b Board
	for _, side := range []Side{First, Second} {
		for _, idx := range pitIndex[row(side)] {
			b.pits[idx] = StartSeeds
		}
	}
	b.first = true
	return b
}

// FromPits returns a custom position with the first side to move.
func FromPits(pits [NumSlots]uint8) Board {
	return NewState(pits, First)
}

// NewState returns a custom position with the given side to move.
func NewState(pits [NumSlots]uint8, toMove Side) Board {
	return Board{pits: pits, first: bool(toMove)}
}

// Index returns the absolute slot of a relative choice for the given side.
func Index(choice int, side Side) int {
	return pitIndex[row(side)][choice]
}

// IsStore reports whether the absolute slot is one of the two stores.
func IsStore(idx int) bool {
	return idx == FirstStore || idx == SecondStore
}

// Play sows the seeds of the chosen pit of the side to move and passes the
// turn. The choice must be one of ValidChoices; anything else panics.
func (b *Board) Play(choice int) *Board {
	if choice < 0 || choice >= PitsPerSide {
		panic(fmt.Sprintf("choice %d out of range", choice))
	}
	idx := Index(choice, b.Player())
	if b.pits[idx] == 0 {
		panic(fmt.Sprintf("choice %d is an empty pit", choice))
	}

	for {
		hand := b.pits[idx]
		b.pits[idx] = 0
		for ; hand > 0; hand-- {
			idx = (idx + 1) % NumSlots
			b.pits[idx]++
		}
		// Landing in a store or an empty pit ends the turn, otherwise the
		// landing pit is picked up and sown again.
		if IsStore(idx) || b.pits[idx] == 1 {
			break
		}
	}

	b.first = !b.first
	return b
}

// ValidChoices returns the relative choices of the side to move whose pits
// hold at least one seed, in ascending order.
func (b Board) ValidChoices() []int {
	choices := make([]int, 0, PitsPerSide)
	for choice, seeds := range b.CurrentSide() {
		if seeds != 0 {
			choices = append(choices, choice)
		}
	}
	return choices
}

// IsValid reports whether choice is a legal move for the side to move.
func (b Board) IsValid(choice int) bool {
	if choice < 0 || choice >= PitsPerSide {
		return false
	}
	return b.pits[Index(choice, b.Player())] != 0
}

// Row returns the play pits of a side in relative order.
func (b Board) Row(side Side) [PitsPerSide]uint8 {
	var pits [PitsPerSide]uint8
	for choice, idx := range pitIndex[row(side)] {
		pits[choice] = b.pits[idx]
	}
	return pits
}

func (b Board) CurrentSide() [PitsPerSide]uint8 {
	return b.Row(b.Player())
}

func (b Board) OpponentSide() [PitsPerSide]uint8 {
	return b.Row(b.Player().Other())
}

// IsTerminal reports whether either side has no seeds left in its row.
func (b Board) IsTerminal() bool {
	var empty [PitsPerSide]uint8
	return b.Row(First) == empty || b.Row(Second) == empty
}

// Player returns the side to move.
func (b Board) Player() Side {
	return Side(b.first)
}

// Pits returns a copy of the raw slot counts.
func (b Board) Pits() [NumSlots]uint8 {
	return b.pits
}

// Seeds returns the number of seeds on the board, stores included.
func (b Board) Seeds() int {
	total := 0
	for _, seeds := range b.pits {
		total += int(seeds)
	}
	return total
}

// Equal compares the rows of both sides and the side to move. Stores and
// the physical layout do not take part in the comparison.
func (b Board) Equal(other Board) bool {
	return b.Row(First) == other.Row(First) &&
		b.Row(Second) == other.Row(Second) &&
		b.first == other.first
}

// Hash is consistent with Equal.
func (b Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, b.first)
	for _, side := range []Side{First, Second} {
		pits := b.Row(side)
		hasher.Write(pits[:])
	}

	return StateHash(hasher.Sum64())
}
