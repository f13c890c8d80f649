// internal/ws/chat.go
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/skillsharehq/skillshare-hub/internal/auth"
	"github.com/skillsharehq/skillshare-hub/internal/service"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ChatGateway bridges workshop chat rooms and the chat service. Rooms and
// presence live in process memory; this only works single-instance.
type ChatGateway struct {
	chatService  *service.ChatService
	tokenManager *auth.TokenManager
	registry     *Registry

	mu    sync.Mutex
	rooms map[uuid.UUID]*Room
}

func NewChatGateway(chatService *service.ChatService, tokenManager *auth.TokenManager, registry *Registry) *ChatGateway {
	return &ChatGateway{
		chatService:  chatService,
		tokenManager: tokenManager,
		registry:     registry,
		rooms:        make(map[uuid.UUID]*Room),
	}
}

// Room maintains the clients connected to one workshop's chat and fans
// events out to them on a single goroutine. The goroutine exits and the
// room drops out of the gateway map once the last client leaves.
type Room struct {
	workshopID uuid.UUID
	gateway    *ChatGateway

	clients    map[*Client]bool
	presence   map[uuid.UUID]int
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

func (g *ChatGateway) room(workshopID uuid.UUID) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	if room, ok := g.rooms[workshopID]; ok {
		return room
	}

	room := &Room{
		workshopID: workshopID,
		gateway:    g,
		clients:    make(map[*Client]bool),
		presence:   make(map[uuid.UUID]int),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
	g.rooms[workshopID] = room
	go room.run()

	return room
}

// dropRoom removes the room from the gateway map if it is still the one
// registered for its workshop.
func (g *ChatGateway) dropRoom(r *Room) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rooms[r.workshopID] == r {
		delete(g.rooms, r.workshopID)
	}
}

func (r *Room) run() {
	for {
		select {
		case client := <-r.register:
			r.clients[client] = true
			r.presence[client.userID]++
			if r.presence[client.userID] == 1 {
				r.fanOut(marshalEvent("user_joined", map[string]string{"user_id": client.userID.String()}))
			}
			client.enqueue(marshalEvent("online_users", r.onlineUsers()))

		case client := <-r.unregister:
			if _, ok := r.clients[client]; ok {
				delete(r.clients, client)
				client.closeSend()
				r.presence[client.userID]--
				if r.presence[client.userID] <= 0 {
					delete(r.presence, client.userID)
					r.fanOut(marshalEvent("user_left", map[string]string{"user_id": client.userID.String()}))
				}
			}

			if len(r.clients) == 0 {
				r.gateway.dropRoom(r)
				close(r.done)
				return
			}

		case msg := <-r.broadcast:
			r.fanOut(msg)
		}
	}
}

func (r *Room) fanOut(payload []byte) {
	for client := range r.clients {
		client.enqueue(payload)
	}
}

func (r *Room) onlineUsers() []string {
	users := make([]string, 0, len(r.presence))
	for userID := range r.presence {
		users = append(users, userID.String())
	}
	return users
}

// Broadcast pushes an event to everyone in the workshop's room. A workshop
// without an active room has nobody listening, so no room is created.
func (g *ChatGateway) Broadcast(workshopID uuid.UUID, eventType string, payload any) {
	g.mu.Lock()
	room, ok := g.rooms[workshopID]
	g.mu.Unlock()
	if !ok {
		return
	}

	msg := marshalEvent(eventType, payload)
	if msg == nil {
		return
	}

	select {
	case room.broadcast <- msg:
	case <-room.done:
	}
}

// ServeHTTP upgrades GET /ws/chat/{workshopID}. The caller authenticates
// with a bearer token in the Authorization header or a token query
// parameter, and must be the owner or enrolled.
func (g *ChatGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workshopID, err := uuid.Parse(chi.URLParam(r, "workshopID"))
	if err != nil {
		http.Error(w, "invalid workshop id", http.StatusBadRequest)
		return
	}

	userID, ok := authenticate(g.tokenManager, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := g.chatService.CheckAccess(r.Context(), workshopID, userID); err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "error", err)
		return
	}

	client := newClient(userID, conn)
	g.registry.Add(userID, client)

	// The room can shut down between lookup and registration if its last
	// client leaves in the gap; retry against a fresh room.
	for {
		room := g.room(workshopID)
		select {
		case room.register <- client:
			client.room = room
		case <-room.done:
			continue
		}
		break
	}

	go client.writePump()
	g.replayRecent(client, workshopID, userID)
	g.readPump(client)
}

// replayRecent sends the newest page of history to a freshly joined socket.
func (g *ChatGateway) replayRecent(client *Client, workshopID, userID uuid.UUID) {
	page, err := g.chatService.GetWorkshopMessages(context.Background(), workshopID, userID, 1, 50)
	if err != nil {
		slog.Warn("replaying chat history", "error", err, "workshop_id", workshopID)
		return
	}
	client.enqueue(marshalEvent("recent_messages", page))
}

type sendMessagePayload struct {
	Message       string `json:"message"`
	Type          string `json:"type"`
	AttachmentURL string `json:"attachment_url"`
}

type editMessagePayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Message   string    `json:"message"`
}

type deleteMessagePayload struct {
	MessageID uuid.UUID `json:"message_id"`
}

func (g *ChatGateway) readPump(client *Client) {
	defer func() {
		// Leave the registry before the room closes the send channel, so
		// targeted sends cannot race a closed channel.
		g.registry.Remove(client.userID, client)
		client.room.unregister <- client
		_ = client.conn.Close()
	}()

	client.conn.SetReadLimit(1 << 20)

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			break
		}

		var envelope Envelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			// Ignore malformed input; keep the connection alive.
			continue
		}

		g.handleEvent(client, envelope)
	}
}

func (g *ChatGateway) handleEvent(client *Client, envelope Envelope) {
	ctx := context.Background()

	switch envelope.Type {
	case "send_message":
		var payload sendMessagePayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return
		}
		message, err := g.chatService.CreateMessage(ctx, client.userID, service.CreateMessageInput{
			WorkshopID:    client.room.workshopID,
			Message:       payload.Message,
			Type:          messageType(payload.Type),
			AttachmentURL: payload.AttachmentURL,
		})
		if err != nil {
			client.enqueue(marshalEvent("error", map[string]string{"error": err.Error()}))
			return
		}
		g.Broadcast(client.room.workshopID, "new_message", message)

	case "edit_message":
		var payload editMessagePayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return
		}
		message, err := g.chatService.EditMessage(ctx, payload.MessageID, client.userID, service.EditMessageInput{
			Message: payload.Message,
		})
		if err != nil {
			client.enqueue(marshalEvent("error", map[string]string{"error": err.Error()}))
			return
		}
		g.Broadcast(client.room.workshopID, "message_edited", message)

	case "delete_message":
		var payload deleteMessagePayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return
		}
		message, err := g.chatService.DeleteMessage(ctx, payload.MessageID, client.userID)
		if err != nil {
			client.enqueue(marshalEvent("error", map[string]string{"error": err.Error()}))
			return
		}
		g.Broadcast(client.room.workshopID, "message_deleted", map[string]string{"message_id": message.ID.String()})

	case "typing_start", "typing_stop":
		// Ephemeral; relayed to the room without persistence.
		g.Broadcast(client.room.workshopID, envelope.Type, map[string]string{"user_id": client.userID.String()})
	}
}
