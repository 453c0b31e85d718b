package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"carbooking/pkg/logger"
)

// Hub fans booking events out to every connected admin client. Client set
// mutations happen only on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	count      int
	logger     *logger.Logger
}

type Message struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     log.WithField("component", "websocket_hub"),
	}
}

// Run processes registrations and broadcasts until ctx is done. Once it
// returns, connected clients are closed and new ones are turned away.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.removeClient(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.setCount(len(h.clients))
			h.logger.WithField("actor", client.Actor).Info("Admin feed client connected")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.removeClient(client)
				h.logger.WithField("actor", client.Actor).Info("Admin feed client disconnected")
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.removeClient(client)
				}
			}
		}
	}
}

// add reports false when the hub has stopped.
func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) removeClient(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.setCount(len(h.clients))
}

func (h *Hub) setCount(n int) {
	h.mutex.Lock()
	h.count = n
	h.mutex.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.count
}

// Publish queues an event for every connected client. Events are dropped
// when the broadcast queue is full.
func (h *Hub) Publish(eventType string, data interface{}) {
	payload, err := json.Marshal(Message{
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data:      data,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal realtime event")
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.WithField("event", eventType).Warn("Realtime broadcast queue full, event dropped")
	}
}
