// Package events defines the event wire format and carries envelopes from
// request handlers to the broadcast bridge, over Redis pub/sub in shared
// deployments or an in-process bus in embedded ones.
package events

import (
	"context"
	"time"
)

// Envelope types.
const (
	TypeGameEvent   = "game_event"
	TypeGlobalEvent = "global_event"
)

// Event names delivered to clients.
const (
	EventConnected    = "connected"
	EventSubscribed   = "subscribed"
	EventUnsubscribed = "unsubscribed"
	EventPong         = "pong"
	EventGameUpdated  = "game:updated"
	EventPlayerJoined = "player:joined"
	EventGameStarted  = "game:started"
	EventGameEnded    = "game:ended"
	EventTurnEnded    = "turn:ended"
)

// Envelope is the pub/sub wire format. Game events fan out to the game's
// subscriber set; global events go to every connected client.
type Envelope struct {
	Type      string    `json:"type"`
	GameID    string    `json:"game_id,omitempty"`
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler consumes delivered envelopes.
type Handler func(Envelope)

// Publisher emits envelopes from the mutation side.
type Publisher interface {
	// PublishGame sends a game-scoped event to gameID's subscribers.
	PublishGame(ctx context.Context, gameID, event string, data any) error
	// PublishGlobal sends an event to every connected client.
	PublishGlobal(ctx context.Context, event string, data any) error
	Close() error
}

func newEnvelope(typ, gameID, event string, data any) Envelope {
	return Envelope{
		Type:      typ,
		GameID:    gameID,
		Event:     event,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}
