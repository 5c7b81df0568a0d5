// Package bridge fans authoritative game events out to WebSocket clients.
// Request handlers publish envelopes (via Redis pub/sub or the in-process
// bus); a single dispatch goroutine delivers them to per-game subscriber
// sets, preserving publish order within each game.
package bridge

import (
	"regexp"
	"sync"
	"time"

	"go.uber.org/zap"

	"boardwalk-backend/events"
)

// Frame is the server-to-client message shape.
type Frame struct {
	Event     string    `json:"event"`
	GameID    string    `json:"game_id,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func newFrame(event, gameID string, data any) Frame {
	return Frame{Event: event, GameID: gameID, Data: data, Timestamp: time.Now().UTC()}
}

// Hub owns the process-local subscriber registry. All map mutation happens
// under one mutex; fan-out happens on the dispatch goroutine.
type Hub struct {
	logger   *zap.Logger
	originRe *regexp.Regexp

	mu      sync.Mutex
	clients map[*Client]struct{}
	games   map[string]map[*Client]struct{}

	feed chan events.Envelope
	done chan struct{}
}

// NewHub creates a Hub and starts its dispatch loop. originRe validates the
// Origin header of incoming upgrade requests.
func NewHub(originRe *regexp.Regexp, logger *zap.Logger) *Hub {
	h := &Hub{
		logger:   logger,
		originRe: originRe,
		clients:  make(map[*Client]struct{}),
		games:    make(map[string]map[*Client]struct{}),
		feed:     make(chan events.Envelope, 256),
		done:     make(chan struct{}),
	}
	go h.dispatch()
	return h
}

// Deliver enqueues an envelope for fan-out. It is the events.Handler wired
// to the subscriber side and blocks if the feed is full, so upstream order
// is never reshuffled.
func (h *Hub) Deliver(env events.Envelope) {
	select {
	case h.feed <- env:
	case <-h.done:
	}
}

func (h *Hub) dispatch() {
	for {
		select {
		case <-h.done:
			return
		case env := <-h.feed:
			frame := newFrame(env.Event, env.GameID, env.Data)
			if env.Type == events.TypeGlobalEvent {
				h.broadcastAll(frame)
			} else {
				h.broadcast(env.GameID, frame)
			}
		}
	}
}

func (h *Hub) broadcast(gameID string, frame Frame) {
	h.mu.Lock()
	subs := make([]*Client, 0, len(h.games[gameID]))
	for c := range h.games[gameID] {
		subs = append(subs, c)
	}
	h.mu.Unlock()
	for _, c := range subs {
		c.enqueue(frame)
	}
}

func (h *Hub) broadcastAll(frame Frame) {
	h.mu.Lock()
	all := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		all = append(all, c)
	}
	h.mu.Unlock()
	for _, c := range all {
		c.enqueue(frame)
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// subscribe adds c to gameID's subscriber set.
func (h *Hub) subscribe(c *Client, gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.games[gameID]
	if !ok {
		set = make(map[*Client]struct{})
		h.games[gameID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unsubscribe(c *Client, gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.games[gameID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.games, gameID)
		}
	}
}

// drop removes c from the registry and every subscriber set.
func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	for gameID, set := range h.games {
		delete(set, c)
		if len(set) == 0 {
			delete(h.games, gameID)
		}
	}
}

// SubscriberCount reports the size of gameID's subscriber set.
func (h *Hub) SubscriberCount(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.games[gameID])
}

// Close stops dispatch and disconnects every client.
func (h *Hub) Close() {
	close(h.done)
	h.mu.Lock()
	all := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		all = append(all, c)
	}
	h.mu.Unlock()
	for _, c := range all {
		c.close()
	}
}
