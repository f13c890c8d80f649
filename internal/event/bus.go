// internal/event/bus.go
package event

import (
	"context"
	"log/slog"
	"sync"
)

// Topic names published by the services. Gateways subscribe to push them
// over websockets.
const (
	TopicNotificationCreated = "notification.created"
	TopicNotificationAllRead = "notification.all_read"
)

// Event carries a topic name and an arbitrary payload.
type Event struct {
	Topic   string
	Payload any
}

// Handler consumes a single event. Handlers must not block for long; slow
// work should be dispatched to PublishAsync consumers.
type Handler func(Event)

// Bus is an in-process publish/subscribe dispatcher. Delivery is best
// effort and local to this process; there is no cross-instance fan-out.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler

	events chan Event
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBus starts a bus with the given number of async delivery workers.
func NewBus(workers int) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	b := &Bus{
		handlers: make(map[string][]Handler),
		events:   make(chan Event, 1000),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		b.wg.Add(1)
		go b.processEvents()
	}

	return b
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish delivers the event synchronously to every subscriber.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[evt.Topic]))
	copy(handlers, b.handlers[evt.Topic])
	b.mu.RUnlock()

	for _, h := range handlers {
		h(evt)
	}
}

// PublishAsync queues the event for the worker pool, dropping it if the
// queue is full or the bus is shutting down.
func (b *Bus) PublishAsync(evt Event) {
	select {
	case b.events <- evt:
	case <-b.ctx.Done():
	default:
		slog.Warn("event queue full, dropping event", "topic", evt.Topic)
	}
}

func (b *Bus) processEvents() {
	defer b.wg.Done()

	for {
		select {
		case evt := <-b.events:
			b.Publish(evt)
		case <-b.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to drain.
func (b *Bus) Shutdown() {
	b.cancel()
	b.wg.Wait()
}
