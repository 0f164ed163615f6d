package ws

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is the wire format for engine notifications.
type Event struct {
	Event   string    `json:"event"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload,omitempty"`
}

// Hub fans engine events out to connected clients. A slow client gets
// disconnected rather than backing up the broadcast path.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	if h.logger != nil {
		h.logger.Debug("ws client connected", zap.Int("clients", n))
	}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if h.logger != nil {
		h.logger.Debug("ws client disconnected", zap.Int("clients", n))
	}
}

// Publish broadcasts one event to every connected client. Never blocks the
// caller: clients whose send buffer is full are dropped.
func (h *Hub) Publish(event string, payload any) {
	if h == nil {
		return
	}

	msg, err := json.Marshal(Event{Event: event, At: time.Now().UTC(), Payload: payload})
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("ws event marshal failed", zap.String("event", event), zap.Error(err))
		}
		return
	}

	h.mu.RLock()
	stale := make([]*Client, 0)
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.unregister(c)
	}
}

// ClientCount reports connected clients, for the status endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
