package sse

import (
	"context"
	"sync"

	"pantry/internal/model"
)

// Client receives the change events of one collection.
type Client struct {
	Collection string
	Ch         chan model.ChangeEvent
}

type Hub struct {
	register    chan *Client
	unregister  chan *Client
	broadcast   chan model.ChangeEvent
	collections map[string]map[*Client]struct{}
	mu          sync.RWMutex
	done        chan struct{}
	stopOnce    sync.Once
}

func NewHub() *Hub {
	return &Hub{
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan model.ChangeEvent, 64),
		collections: make(map[string]map[*Client]struct{}),
		done:        make(chan struct{}),
	}
}

// Register and Unregister return immediately once Run has stopped.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues an event without blocking; it is dropped when the queue is full.
func (h *Hub) Broadcast(event model.ChangeEvent) bool {
	select {
	case h.broadcast <- event:
		return true
	default:
		return false
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case event := <-h.broadcast:
			h.broadcastToCollection(event)
		}
	}
}

func (h *Hub) Subscribers(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.collections[collection])
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.collections[client.Collection] == nil {
		h.collections[client.Collection] = make(map[*Client]struct{})
	}
	h.collections[client.Collection][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.collections[client.Collection]
	if clients == nil {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.collections, client.Collection)
	}
}

func (h *Hub) broadcastToCollection(event model.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.collections[event.Collection] {
		select {
		case client.Ch <- event:
		default:
			// Drop if the client is too slow.
		}
	}
}
