package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boardwalk-backend/events"
	"boardwalk-backend/game"
	"boardwalk-backend/store"
)

// storeTimeout bounds every store round-trip; publishTimeout bounds the
// post-save event publish, which never rolls the save back.
const (
	storeTimeout   = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// Handler holds the dependencies of the HTTP surface.
type Handler struct {
	store  store.GameStore
	pub    events.Publisher
	dice   game.Dice
	locks  *lockTable
	logger *zap.Logger
}

// NewHandler creates the surface over a store and publisher. dice is
// injected so tests can script rolls.
func NewHandler(st store.GameStore, pub events.Publisher, dice game.Dice, logger *zap.Logger) *Handler {
	return &Handler{
		store:  st,
		pub:    pub,
		dice:   dice,
		locks:  newLockTable(),
		logger: logger,
	}
}

// Register mounts all game routes on r.
func (h *Handler) Register(r gin.IRouter) {
	games := r.Group("/games")
	games.POST("", h.createGame)
	games.GET("", h.listGames)
	games.GET("/:id", h.getGame)
	games.DELETE("/:id", h.deleteGame)
	games.POST("/:id/players", h.joinGame)
	games.POST("/:id/start", h.startGame)
	games.POST("/:id/roll", h.rollDice)
	games.POST("/:id/end", h.endGame)
	games.GET("/:id/board", h.getBoard)
}

func (h *Handler) load(c *gin.Context, id string) (*game.Game, error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	return h.store.Load(ctx, id)
}

// save commits the snapshot on a context detached from the client, so a
// cancellation racing the write cannot leave a half-persisted turn.
func (h *Handler) save(c *gin.Context, g *game.Game) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), storeTimeout)
	defer cancel()
	return h.store.Save(ctx, g)
}

// publishGame emits a game-scoped event after a successful save. Failures
// are logged, never rolled back; clients catch up on reconnect.
func (h *Handler) publishGame(gameID, event string, data any) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := h.pub.PublishGame(ctx, gameID, event, data); err != nil {
		h.logger.Warn("publish failed",
			zap.String("game_id", gameID), zap.String("event", event), zap.Error(err))
	}
}

func (h *Handler) publishGlobal(event string, data any) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := h.pub.PublishGlobal(ctx, event, data); err != nil {
		h.logger.Warn("publish failed", zap.String("event", event), zap.Error(err))
	}
}

func (h *Handler) createGame(c *gin.Context) {
	g := game.NewGame()
	if err := h.save(c, g); err != nil {
		failErr(c, err)
		return
	}
	h.logger.Info("game created", zap.String("game_id", g.ID))
	h.publishGlobal(events.EventGameUpdated, gin.H{"game": g})
	ok(c, http.StatusCreated, g)
}

func (h *Handler) listGames(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	ids, err := h.store.AllIDs(ctx)
	if err != nil {
		failErr(c, err)
		return
	}
	summaries := make([]gameSummary, 0, len(ids))
	for _, id := range ids {
		g, err := h.store.Load(ctx, id)
		if err != nil {
			// Expired or poisoned between index read and load; skip.
			continue
		}
		summaries = append(summaries, gameSummary{
			ID:          g.ID,
			Status:      g.Status,
			PlayerCount: len(g.Players),
			CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		})
	}
	ok(c, http.StatusOK, gin.H{"games": summaries, "total": len(summaries)})
}

func (h *Handler) getGame(c *gin.Context) {
	g, err := h.load(c, c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, g)
}

func (h *Handler) getBoard(c *gin.Context) {
	g, err := h.load(c, c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, g.Board)
}

func (h *Handler) deleteGame(c *gin.Context) {
	id := c.Param("id")
	if !h.locks.TryLock(id) {
		failErr(c, ErrConflict)
		return
	}
	defer h.locks.Unlock(id)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), storeTimeout)
	defer cancel()
	if err := h.store.Delete(ctx, id); err != nil {
		failErr(c, err)
		return
	}
	h.logger.Info("game deleted", zap.String("game_id", id))
	h.publishGame(id, events.EventGameEnded, gin.H{"game_id": id})
	h.publishGlobal(events.EventGameUpdated, gin.H{"game_id": id, "deleted": true})
	ok(c, http.StatusOK, nil)
}

func (h *Handler) joinGame(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, KindInvalidBody, "malformed request body")
		return
	}

	id := c.Param("id")
	if !h.locks.TryLock(id) {
		failErr(c, ErrConflict)
		return
	}
	defer h.locks.Unlock(id)

	g, err := h.load(c, id)
	if err != nil {
		failErr(c, err)
		return
	}
	p, err := g.AddPlayer(req.Name, game.Token(req.Token))
	if err != nil {
		// Joining a running game reads as "started" on this endpoint.
		if errors.Is(err, game.ErrAlreadyStarted) {
			fail(c, http.StatusBadRequest, KindStarted, err.Error())
			return
		}
		failErr(c, err)
		return
	}
	if err := h.save(c, g); err != nil {
		failErr(c, err)
		return
	}
	h.logger.Info("player joined",
		zap.String("game_id", g.ID), zap.String("player", p.Name))
	h.publishGame(g.ID, events.EventPlayerJoined, gin.H{"player": p, "game": g})
	ok(c, http.StatusCreated, gin.H{"player": p, "game": g})
}

func (h *Handler) startGame(c *gin.Context) {
	id := c.Param("id")
	if !h.locks.TryLock(id) {
		failErr(c, ErrConflict)
		return
	}
	defer h.locks.Unlock(id)

	g, err := h.load(c, id)
	if err != nil {
		failErr(c, err)
		return
	}
	if err := g.Start(); err != nil {
		failErr(c, err)
		return
	}
	if err := h.save(c, g); err != nil {
		failErr(c, err)
		return
	}
	h.logger.Info("game started",
		zap.String("game_id", g.ID), zap.Int("players", len(g.Players)))
	h.publishGame(g.ID, events.EventGameStarted, gin.H{"game": g})
	ok(c, http.StatusOK, g)
}

func (h *Handler) rollDice(c *gin.Context) {
	id := c.Param("id")
	if !h.locks.TryLock(id) {
		failErr(c, ErrConflict)
		return
	}
	defer h.locks.Unlock(id)

	g, err := h.load(c, id)
	if err != nil {
		failErr(c, err)
		return
	}
	result, err := game.ExecuteTurn(g, h.dice)
	if err != nil {
		failErr(c, err)
		return
	}
	if err := h.save(c, g); err != nil {
		failErr(c, err)
		return
	}
	h.publishGame(g.ID, events.EventTurnEnded, gin.H{"turn_result": result, "game": g})
	ok(c, http.StatusOK, result)
}

func (h *Handler) endGame(c *gin.Context) {
	id := c.Param("id")
	if !h.locks.TryLock(id) {
		failErr(c, ErrConflict)
		return
	}
	defer h.locks.Unlock(id)

	g, err := h.load(c, id)
	if err != nil {
		failErr(c, err)
		return
	}
	g.End()
	if err := h.save(c, g); err != nil {
		failErr(c, err)
		return
	}
	h.logger.Info("game ended", zap.String("game_id", g.ID))
	h.publishGame(g.ID, events.EventGameEnded, gin.H{"game": g})
	ok(c, http.StatusOK, g)
}
