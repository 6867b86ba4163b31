// Package websocket broadcasts change notifications so every open
// household screen stays in sync.
package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Message is a real-time sync notification broadcast to all clients.
type Message struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id,omitempty"`
}

// NewMessage creates a Message with the Type field derived from the
// collection and action, e.g. "expenses_updated".
func NewMessage(collection, action, id string) Message {
	return Message{
		Type:       fmt.Sprintf("%s_%s", collection, action),
		Collection: collection,
		Action:     action,
		ID:         id,
	}
}

// Hub maintains the set of active WebSocket clients and broadcasts messages.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *slog.Logger
}

// NewHub creates a new Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Notify builds a change message and broadcasts it. Its signature matches
// the notifier hook the engines accept.
func (h *Hub) Notify(collection, action, id string) {
	h.Broadcast(NewMessage(collection, action, id))
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Client buffer full, drop the message to avoid blocking.
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
