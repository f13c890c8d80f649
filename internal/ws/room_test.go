package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoomLifecycle(t *testing.T) {
	workshopID := uuid.New()

	t.Run("the room is torn down when the last client leaves", func(t *testing.T) {
		g := NewChatGateway(nil, nil, NewRegistry())

		room := g.room(workshopID)
		client := &Client{userID: uuid.New(), send: make(chan []byte, 4)}

		room.register <- client
		room.unregister <- client

		select {
		case <-room.done:
		case <-time.After(time.Second):
			t.Fatal("room did not shut down after the last client left")
		}

		g.mu.Lock()
		_, ok := g.rooms[workshopID]
		g.mu.Unlock()
		assert.False(t, ok)

		// A later join gets a fresh room.
		assert.NotSame(t, room, g.room(workshopID))
	})

	t.Run("broadcast without listeners creates no room", func(t *testing.T) {
		g := NewChatGateway(nil, nil, NewRegistry())

		g.Broadcast(workshopID, "typing_start", map[string]string{"user_id": uuid.New().String()})

		g.mu.Lock()
		defer g.mu.Unlock()
		assert.Empty(t, g.rooms)
	})
}
