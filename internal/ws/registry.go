// internal/ws/registry.go
package ws

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks which websocket clients belong to which user. It lives in
// process memory only, so targeted delivery works for single-instance
// deployments; a second instance would not see these connections.
type Registry struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]bool
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[uuid.UUID]map[*Client]bool)}
}

func (r *Registry) Add(userID uuid.UUID, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.clients[userID] == nil {
		r.clients[userID] = make(map[*Client]bool)
	}
	r.clients[userID][client] = true
}

func (r *Registry) Remove(userID uuid.UUID, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set := r.clients[userID]; set != nil {
		delete(set, client)
		if len(set) == 0 {
			delete(r.clients, userID)
		}
	}
}

// Lookup returns a snapshot of the user's active clients.
func (r *Registry) Lookup(userID uuid.UUID) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.clients[userID]
	clients := make([]*Client, 0, len(set))
	for client := range set {
		clients = append(clients, client)
	}
	return clients
}

// Send queues a payload on every client of the user. Slow or already
// torn-down clients are skipped rather than blocking the caller.
func (r *Registry) Send(userID uuid.UUID, payload []byte) {
	for _, client := range r.Lookup(userID) {
		client.enqueue(payload)
	}
}
