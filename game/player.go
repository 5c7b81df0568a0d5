package game

import (
	"regexp"

	"github.com/google/uuid"
)

// Token is a player's board piece. Unique within a game.
type Token string

// The eight playable tokens.
const (
	TokenBoot        Token = "boot"
	TokenCar         Token = "car"
	TokenShip        Token = "ship"
	TokenThimble     Token = "thimble"
	TokenHat         Token = "hat"
	TokenDog         Token = "dog"
	TokenWheelbarrow Token = "wheelbarrow"
	TokenIron        Token = "iron"
)

var validTokens = map[Token]bool{
	TokenBoot:        true,
	TokenCar:         true,
	TokenShip:        true,
	TokenThimble:     true,
	TokenHat:         true,
	TokenDog:         true,
	TokenWheelbarrow: true,
	TokenIron:        true,
}

// ValidToken reports whether t is one of the eight playable tokens.
func ValidToken(t Token) bool { return validTokens[t] }

// Player funding and jail rules.
const (
	StartingBalance = 1500
	MaxJailTurns    = 3
	JailFee         = 50
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9 -]{2,20}$`)

// ValidName reports whether name is 2-20 letters, digits, spaces or hyphens.
func ValidName(name string) bool { return nameRe.MatchString(name) }

// Player is one participant in a game.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Token       Token  `json:"token"`
	Balance     int    `json:"balance"`
	Position    int    `json:"position"`
	Active      bool   `json:"active"`
	InJail      bool   `json:"in_jail"`
	JailTurns   int    `json:"jail_turns"`
	HasJailCard bool   `json:"has_jail_card"`
	Properties  []int  `json:"properties"` // board positions owned, in purchase order
}

// NewPlayer creates an active player on Go with the starting balance. The
// caller is responsible for name/token validation and uniqueness.
func NewPlayer(name string, token Token) *Player {
	return &Player{
		ID:         uuid.NewString(),
		Name:       name,
		Token:      token,
		Balance:    StartingBalance,
		Position:   GoPosition,
		Active:     true,
		Properties: []int{},
	}
}
