package ws

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	userID := uuid.New()

	t.Run("add, lookup and remove", func(t *testing.T) {
		registry := NewRegistry()
		first := &Client{userID: userID, send: make(chan []byte, 1)}
		second := &Client{userID: userID, send: make(chan []byte, 1)}

		registry.Add(userID, first)
		registry.Add(userID, second)
		assert.Len(t, registry.Lookup(userID), 2)

		registry.Remove(userID, first)
		assert.Len(t, registry.Lookup(userID), 1)

		registry.Remove(userID, second)
		assert.Empty(t, registry.Lookup(userID))
	})

	t.Run("send reaches every connection of the user", func(t *testing.T) {
		registry := NewRegistry()
		first := &Client{userID: userID, send: make(chan []byte, 1)}
		second := &Client{userID: userID, send: make(chan []byte, 1)}
		registry.Add(userID, first)
		registry.Add(userID, second)

		registry.Send(userID, []byte(`{"type":"ping"}`))

		assert.Len(t, first.send, 1)
		assert.Len(t, second.send, 1)
	})

	t.Run("a full client buffer does not block the sender", func(t *testing.T) {
		registry := NewRegistry()
		slow := &Client{userID: userID, send: make(chan []byte, 1)}
		registry.Add(userID, slow)

		registry.Send(userID, []byte("one"))
		registry.Send(userID, []byte("two"))

		assert.Len(t, slow.send, 1)
		assert.Equal(t, []byte("one"), <-slow.send)
	})

	t.Run("send to a torn-down client is a no-op", func(t *testing.T) {
		registry := NewRegistry()
		gone := &Client{userID: userID, send: make(chan []byte, 1)}
		registry.Add(userID, gone)
		gone.closeSend()

		registry.Send(userID, []byte("late"))

		assert.Empty(t, gone.send)
	})

	t.Run("teardown racing a send never panics", func(t *testing.T) {
		registry := NewRegistry()
		payload := []byte(`{"type":"ping"}`)

		stop := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					select {
					case <-stop:
						return
					default:
						registry.Send(userID, payload)
					}
				}
			}()
		}

		for i := 0; i < 500; i++ {
			client := &Client{userID: userID, send: make(chan []byte, 1)}
			registry.Add(userID, client)
			registry.Remove(userID, client)
			client.closeSend()
		}

		close(stop)
		wg.Wait()
	})

	t.Run("other users are untouched", func(t *testing.T) {
		registry := NewRegistry()
		mine := &Client{userID: userID, send: make(chan []byte, 1)}
		otherID := uuid.New()
		other := &Client{userID: otherID, send: make(chan []byte, 1)}
		registry.Add(userID, mine)
		registry.Add(otherID, other)

		registry.Send(userID, []byte("hello"))

		assert.Len(t, mine.send, 1)
		assert.Empty(t, other.send)
	})
}
