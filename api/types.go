// Package api exposes the game over an HTTP/JSON surface. Every response
// shares one envelope; errors carry a semantic kind in the error field.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boardwalk-backend/game"
	"boardwalk-backend/store"
)

// Response is the shared HTTP envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrConflict reports a concurrent mutation of the same game.
var ErrConflict = errors.New("game is busy, retry")

// Semantic error kinds surfaced in the envelope.
const (
	KindNotFound         = "not_found"
	KindFull             = "full"
	KindStarted          = "started"
	KindAlreadyStarted   = "already_started"
	KindNotStarted       = "not_started"
	KindNotEnoughPlayers = "not_enough_players"
	KindDuplicateName    = "duplicate_name"
	KindDuplicateToken   = "duplicate_token"
	KindInvalidToken     = "invalid_token"
	KindInvalidName      = "invalid_name"
	KindInvalidBody      = "invalid_body"
	KindConflict         = "conflict"
	KindUnavailable      = "unavailable"
)

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func fail(c *gin.Context, status int, kind, msg string) {
	c.JSON(status, Response{Success: false, Error: kind, Message: msg})
}

// errorKind maps a domain or store error to its HTTP status and kind. A
// corrupted snapshot reads as not-found: the store has already dropped it.
func errorKind(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrCorrupted):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable, KindUnavailable
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, KindConflict
	case errors.Is(err, game.ErrGameFull):
		return http.StatusBadRequest, KindFull
	case errors.Is(err, game.ErrAlreadyStarted):
		return http.StatusBadRequest, KindAlreadyStarted
	case errors.Is(err, game.ErrNotStarted):
		return http.StatusBadRequest, KindNotStarted
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return http.StatusBadRequest, KindNotEnoughPlayers
	case errors.Is(err, game.ErrDuplicateName):
		return http.StatusBadRequest, KindDuplicateName
	case errors.Is(err, game.ErrDuplicateToken):
		return http.StatusBadRequest, KindDuplicateToken
	case errors.Is(err, game.ErrInvalidToken):
		return http.StatusBadRequest, KindInvalidToken
	case errors.Is(err, game.ErrInvalidName):
		return http.StatusBadRequest, KindInvalidName
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func failErr(c *gin.Context, err error) {
	status, kind := errorKind(err)
	fail(c, status, kind, err.Error())
}

// gameSummary is one row of the game list.
type gameSummary struct {
	ID          string      `json:"id"`
	Status      game.Status `json:"status"`
	PlayerCount int         `json:"player_count"`
	CreatedAt   string      `json:"created_at"`
}

type joinRequest struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}
