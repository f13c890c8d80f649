// internal/ws/notification.go
package ws

import (
	"log/slog"
	"net/http"

	"github.com/skillsharehq/skillshare-hub/internal/auth"
	"github.com/skillsharehq/skillshare-hub/internal/event"
	"github.com/skillsharehq/skillshare-hub/internal/service"
)

// NotificationGateway pushes notification events to the owning user's
// connected sockets. It consumes the in-process bus the notification
// service publishes to.
type NotificationGateway struct {
	tokenManager *auth.TokenManager
	registry     *Registry
}

func NewNotificationGateway(tokenManager *auth.TokenManager, registry *Registry, bus *event.Bus) *NotificationGateway {
	g := &NotificationGateway{
		tokenManager: tokenManager,
		registry:     registry,
	}

	bus.Subscribe(event.TopicNotificationCreated, g.onNotificationCreated)
	bus.Subscribe(event.TopicNotificationAllRead, g.onAllRead)

	return g
}

func (g *NotificationGateway) onNotificationCreated(evt event.Event) {
	payload, ok := evt.Payload.(service.NotificationCreated)
	if !ok {
		slog.Warn("unexpected payload on notification topic")
		return
	}

	g.registry.Send(payload.Notification.UserID, marshalEvent("new-notification", map[string]any{
		"notification": payload.Notification,
		"push":         payload.Push,
	}))
}

func (g *NotificationGateway) onAllRead(evt event.Event) {
	payload, ok := evt.Payload.(service.AllRead)
	if !ok {
		slog.Warn("unexpected payload on all-read topic")
		return
	}

	g.registry.Send(payload.UserID, marshalEvent("all-read", map[string]string{
		"user_id": payload.UserID.String(),
	}))
}

// ServeHTTP upgrades GET /ws/notifications. The connection only receives;
// inbound frames are read and discarded to detect disconnects.
func (g *NotificationGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticate(g.tokenManager, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "error", err)
		return
	}

	client := newClient(userID, conn)
	g.registry.Add(userID, client)

	go client.writePump()

	defer func() {
		g.registry.Remove(userID, client)
		client.closeSend()
		_ = conn.Close()
	}()

	conn.SetReadLimit(1 << 16)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
