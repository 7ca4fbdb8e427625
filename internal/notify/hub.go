// Package notify delivers order lifecycle events to in-process subscribers
// (an admin view tracking incoming orders, a kitchen display). There is no
// network in scope; subscribers are channels within the same process.
package notify

import (
	"encoding/json"
	"sync"
)

// Event represents a message to be broadcast.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Subscriber receives broadcast events on its channel.
type Subscriber struct {
	events chan Event
}

// Events is the subscriber's receive channel. Closed when the subscriber is
// unregistered or dropped for falling behind.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

// Hub maintains the set of active subscribers and broadcasts events to them.
type Hub struct {
	subscribers map[*Subscriber]bool

	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan Event

	// Mutex for thread-safe subscriber set access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan Event, 256),
	}
}

// Run starts the hub's main loop.
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.subscribers[sub] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, exists := h.subscribers[sub]; exists {
				delete(h.subscribers, sub)
				close(sub.events)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for sub := range h.subscribers {
				select {
				case sub.events <- event:
				default:
					// Subscriber's buffer is full, drop it
					close(sub.events)
					delete(h.subscribers, sub)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Subscribe registers a new subscriber and returns it.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{events: make(chan Event, 256)}
	h.register <- sub
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.unregister <- sub
}

// Broadcast sends an event to all subscribers.
// This is the public API for services to publish events.
func (h *Hub) Broadcast(event Event) {
	h.broadcast <- event
}
