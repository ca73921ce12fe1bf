package player

import (
	"mancala/engine"
	"mancala/game"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// CryptoSource draws from frand. It is safe for concurrent use and needs no
// seeding, which makes it the default for simulations.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) int {
	return frand.Intn(n)
}

// NewSeededSource returns a reproducible source. It is not safe for
// concurrent use; strategies built on it are cloned per match.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Random picks uniformly among the valid choices.
type Random struct {
	src game.Source
}

func NewRandom(src game.Source) *Random {
	if src == nil {
		src = CryptoSource{}
	}
	return &Random{src: src}
}

func (r *Random) Choose(b game.Board) int {
	choices := b.ValidChoices()
	return choices[r.src.Intn(len(choices))]
}

// Clone derives an independent seeded source from a seeded parent so clones
// stay reproducible without sharing state. Other sources are shared.
func (r *Random) Clone() engine.Strategy {
	if seeded, ok := r.src.(*rand.Rand); ok {
		return &Random{src: NewSeededSource(seeded.Uint64())}
	}
	return r
}
