// Package game implements the board rules: the tile catalog, card decks,
// player and game aggregates, and the turn engine. Everything here is pure
// in-memory state; persistence and transport live elsewhere.
package game

import (
	"time"

	"github.com/google/uuid"
)

// Status is a game's lifecycle phase.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Seat bounds.
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// BankReserve is the bank's starting balance. Large enough to be effectively
// unbounded; the bank may go negative without error.
const BankReserve = 1_000_000

// Bank is the game's money source and sink.
type Bank struct {
	Balance int `json:"balance"`
}

// SidePot accumulates tax payments until a Free Parking landing collects it.
type SidePot struct {
	Balance int `json:"balance"`
}

// Game is the aggregate root: players, board, decks and turn state.
type Game struct {
	ID                 string    `json:"id"`
	Players            []*Player `json:"players"`
	CurrentPlayerIndex int       `json:"current_player_index"`
	Board              []*Tile   `json:"board"`
	Bank               Bank      `json:"bank"`
	SidePot            SidePot   `json:"side_pot"`
	ChanceDeck         Deck      `json:"chance_deck"`
	CommunityChestDeck Deck      `json:"community_chest_deck"`
	Status             Status    `json:"status"`
	LastDiceSum        int       `json:"last_dice_sum"`
	WinnerID           string    `json:"winner_id,omitempty"`
	Version            int64     `json:"version"`
	CreatedAt          time.Time `json:"created_at"`
	LastActivityAt     time.Time `json:"last_activity_at"`
}

// NewGame creates an empty waiting game with a fresh board and shuffled decks.
func NewGame() *Game {
	now := time.Now().UTC()
	return &Game{
		ID:                 uuid.NewString(),
		Players:            []*Player{},
		Board:              NewBoard(),
		Bank:               Bank{Balance: BankReserve},
		ChanceDeck:         NewDeck(CardChance),
		CommunityChestDeck: NewDeck(CardCommunityChest),
		Status:             StatusWaiting,
		CreatedAt:          now,
		LastActivityAt:     now,
	}
}

// AddPlayer validates and seats a new player. Joining is only allowed while
// the game is waiting.
func (g *Game) AddPlayer(name string, token Token) (*Player, error) {
	if g.Status != StatusWaiting {
		return nil, ErrAlreadyStarted
	}
	if len(g.Players) >= MaxPlayers {
		return nil, ErrGameFull
	}
	if !ValidName(name) {
		return nil, ErrInvalidName
	}
	if !ValidToken(token) {
		return nil, ErrInvalidToken
	}
	for _, p := range g.Players {
		if p.Name == name {
			return nil, ErrDuplicateName
		}
		if p.Token == token {
			return nil, ErrDuplicateToken
		}
	}
	p := NewPlayer(name, token)
	g.Players = append(g.Players, p)
	g.Touch()
	return p, nil
}

// Start moves the game to in_progress with the first seat to act.
func (g *Game) Start() error {
	if g.Status != StatusWaiting {
		return ErrAlreadyStarted
	}
	if len(g.Players) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	g.Status = StatusInProgress
	g.CurrentPlayerIndex = 0
	g.Touch()
	return nil
}

// End finishes the game regardless of progress. If exactly one player is
// still active they are recorded as the winner.
func (g *Game) End() {
	g.Status = StatusFinished
	if p := g.soleActivePlayer(); p != nil {
		g.WinnerID = p.ID
	}
	g.Touch()
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerIndex]
}

// PlayerByID returns the player with the given id, or nil.
func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ActivePlayers counts players not yet bankrupt.
func (g *Game) ActivePlayers() int {
	n := 0
	for _, p := range g.Players {
		if p.Active {
			n++
		}
	}
	return n
}

// soleActivePlayer returns the only active player, or nil when zero or more
// than one remain.
func (g *Game) soleActivePlayer() *Player {
	var survivor *Player
	for _, p := range g.Players {
		if !p.Active {
			continue
		}
		if survivor != nil {
			return nil
		}
		survivor = p
	}
	return survivor
}

// TilesInGroup returns the property tiles of a color group in board order.
func (g *Game) TilesInGroup(color ColorGroup) []*Tile {
	var tiles []*Tile
	for _, t := range g.Board {
		if t.Kind == TileProperty && t.Color == color {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// HasMonopoly reports whether the owner holds every property in the group.
func (g *Game) HasMonopoly(ownerID string, color ColorGroup) bool {
	if ownerID == "" {
		return false
	}
	tiles := g.TilesInGroup(color)
	if len(tiles) == 0 {
		return false
	}
	for _, t := range tiles {
		if t.OwnerID != ownerID {
			return false
		}
	}
	return true
}

// OwnedCount counts tiles of the given kind owned by the player. Used for
// railroad and utility rent scaling.
func (g *Game) OwnedCount(ownerID string, kind TileKind) int {
	n := 0
	for _, t := range g.Board {
		if t.Kind == kind && t.OwnerID == ownerID {
			n++
		}
	}
	return n
}

// Touch refreshes the activity timestamp used for TTL-based expiry.
func (g *Game) Touch() {
	g.LastActivityAt = time.Now().UTC()
}

// advanceTurn moves current_player_index to the next active seat. The scan is
// bounded by the seat count so a fully-bankrupt table cannot loop.
func (g *Game) advanceTurn() {
	n := len(g.Players)
	idx := g.CurrentPlayerIndex
	for i := 0; i < n; i++ {
		idx = (idx + 1) % n
		if g.Players[idx].Active {
			g.CurrentPlayerIndex = idx
			return
		}
	}
}

// sendToJail relocates p to the jail tile. No Go bonus is paid for the move
// and the jail counter restarts.
func (g *Game) sendToJail(p *Player) {
	p.Position = JailPosition
	p.InJail = true
	p.JailTurns = 0
}

// bankrupt marks p inactive and reverts every owned tile to unowned with its
// houses cleared.
func (g *Game) bankrupt(p *Player) {
	p.Active = false
	for _, pos := range p.Properties {
		t := g.Board[pos]
		t.OwnerID = ""
		t.HouseCount = 0
	}
	p.Properties = []int{}
}

// Money moves below go through these helpers so that every flow in the game
// is a transfer between player, bank and side pot; the conservation checks in
// tests rely on that.

func (g *Game) bankPays(p *Player, amount int) {
	g.Bank.Balance -= amount
	p.Balance += amount
}

func (g *Game) paysBank(p *Player, amount int) {
	p.Balance -= amount
	g.Bank.Balance += amount
}

func (g *Game) paysPot(p *Player, amount int) {
	p.Balance -= amount
	g.SidePot.Balance += amount
}

// collectPot empties the side pot into p and returns the amount.
func (g *Game) collectPot(p *Player) int {
	amount := g.SidePot.Balance
	g.SidePot.Balance = 0
	p.Balance += amount
	return amount
}
