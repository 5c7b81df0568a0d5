package game

import "math/rand/v2"

// Dice rolls two six-sided dice. Injected into the engine so turn tests can
// script exact rolls.
type Dice interface {
	Roll() (int, int)
}

// RandomDice is the production Dice backed by math/rand/v2.
type RandomDice struct{}

func (RandomDice) Roll() (int, int) {
	return rand.IntN(6) + 1, rand.IntN(6) + 1
}
