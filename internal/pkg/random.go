package pkg

import "math/rand/v2"

// Randomizer is the source of every random decision in a game.
type Randomizer interface {
	// IntN returns a number in [0, n).
	IntN(n int) int
}

type uniformRandomizer struct{}

// NewRandomizer returns a Randomizer backed by the global math/rand/v2 source.
func NewRandomizer() Randomizer {
	return uniformRandomizer{}
}

func (uniformRandomizer) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}
