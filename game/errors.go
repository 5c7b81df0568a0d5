package game

import "errors"

// Domain errors. Handlers map these onto the HTTP error taxonomy with
// errors.Is; the game package itself carries no transport concerns.
var (
	ErrGameFull         = errors.New("game is full")
	ErrAlreadyStarted   = errors.New("game has already started")
	ErrNotStarted       = errors.New("game is not in progress")
	ErrNotEnoughPlayers = errors.New("at least two players are required")
	ErrDuplicateName    = errors.New("name already taken")
	ErrDuplicateToken   = errors.New("token already taken")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidName      = errors.New("invalid name")
)
