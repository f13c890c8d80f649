// internal/ws/client.go
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Envelope is the wire format for both directions: a type tag and a
// type-specific payload.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// marshalEvent builds an outgoing envelope. Marshal failures are programmer
// errors on our own payload types; they are logged and produce nil.
func marshalEvent(eventType string, payload any) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshaling ws payload", "error", err, "type", eventType)
		return nil
	}

	out, err := json.Marshal(Envelope{Type: eventType, Data: data})
	if err != nil {
		slog.Error("marshaling ws envelope", "error", err, "type", eventType)
		return nil
	}

	return out
}

// Client is one websocket connection belonging to an authenticated user.
type Client struct {
	userID uuid.UUID
	conn   *websocket.Conn

	// mu guards send and closed so the registry and rooms can still hold a
	// stale pointer to a torn-down client without hitting a closed channel.
	mu     sync.Mutex
	send   chan []byte
	closed bool

	// room is nil for notification-only connections.
	room *Room
}

func newClient(userID uuid.UUID, conn *websocket.Conn) *Client {
	return &Client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
}

func (c *Client) writePump() {
	defer func() { _ = c.conn.Close() }()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// enqueue drops the payload instead of blocking when the client is slow,
// and is a no-op once the client has been closed.
func (c *Client) enqueue(payload []byte) {
	if payload == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	select {
	case c.send <- payload:
	default:
	}
}

// closeSend stops the write pump. Idempotent; enqueue calls racing the
// teardown see the closed flag instead of a closed channel.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
