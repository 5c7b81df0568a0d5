package bridge

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"boardwalk-backend/events"
)

const (
	// writeWait bounds a single frame write; a slower client is dropped.
	writeWait = time.Second
	// idleWait is how long a connection may go without any inbound traffic
	// (including ping actions) before it is closed.
	idleWait = 60 * time.Second

	maxMessageSize = 1024
	sendBufferSize = 32
)

// clientMessage is the client-to-server action shape.
type clientMessage struct {
	Action string `json:"action"`
	GameID string `json:"game_id,omitempty"`
}

// Client is one WebSocket connection. Reads happen on the read pump, writes
// only on the write pump; the send channel decouples the two. The mutex
// guards the closed flag so enqueue never races the channel close.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan Frame
	closed bool
}

// ServeWS upgrades the request and runs the connection's pumps. The read
// pump runs on the calling goroutine and returns on disconnect.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  maxMessageSize,
		WriteBufferSize: maxMessageSize,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || h.originRe.MatchString(origin)
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	c := &Client{hub: h, conn: conn, send: make(chan Frame, sendBufferSize)}
	h.register(c)
	go c.writePump()
	c.enqueue(newFrame(events.EventConnected, "", nil))
	c.readPump()
}

// enqueue hands a frame to the write pump without blocking dispatch. A full
// buffer means the client cannot keep up, so it is dropped.
func (c *Client) enqueue(frame Frame) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	select {
	case c.send <- frame:
		c.mu.Unlock()
	default:
		c.mu.Unlock()
		c.hub.logger.Warn("slow ws client dropped")
		c.close()
	}
}

func (c *Client) readPump() {
	defer c.close()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(idleWait))
	for {
		var msg clientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(idleWait))

		switch msg.Action {
		case "subscribe":
			if msg.GameID == "" {
				continue
			}
			c.hub.subscribe(c, msg.GameID)
			c.enqueue(newFrame(events.EventSubscribed, msg.GameID, nil))
		case "unsubscribe":
			if msg.GameID == "" {
				continue
			}
			c.hub.unsubscribe(c, msg.GameID)
			c.enqueue(newFrame(events.EventUnsubscribed, msg.GameID, nil))
		case "ping":
			c.enqueue(newFrame(events.EventPong, "", nil))
		}
	}
}

func (c *Client) writePump() {
	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(frame); err != nil {
			c.close()
			return
		}
	}
	// Send channel closed: say goodbye before tearing the socket down.
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

// close drops the client from the hub and shuts the connection down. Safe
// to call from any goroutine, any number of times.
func (c *Client) close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()

	c.hub.drop(c)
	c.conn.Close()
}
