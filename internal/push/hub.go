package push

import (
	"encoding/json"
	"sync"

	"freelancehub_backend/internal/logger"
)

// Publisher delivers real-time payloads to a connected user.
// Delivery is best effort: a user with no open connection is skipped.
type Publisher interface {
	PublishToUser(userID string, event string, payload any)
}

// Hub tracks open websocket connections per user. A user may hold
// several connections (multiple tabs), each gets every event.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	sendBufferSize int
}

func NewHub(sendBufferSize int) *Hub {
	if sendBufferSize <= 0 {
		sendBufferSize = 256
	}
	return &Hub{
		clients:        make(map[string]map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		sendBufferSize: sendBufferSize,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()
			logger.Debug("push client registered", "user_id", client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.UserID]; ok {
				if conns[client] {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}
			h.mu.Unlock()
			logger.Debug("push client unregistered", "user_id", client.UserID)
		}
	}
}

// Event is the wire frame pushed over the websocket.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// PublishToUser sends the event to every open connection of the user.
// Slow connections drop the event rather than block the caller.
func (h *Hub) PublishToUser(userID string, event string, payload any) {
	frame, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		logger.WithError(err).Warn("failed to encode push event", "event", event)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		select {
		case client.send <- frame:
		default:
			logger.Warn("push buffer full, dropping event", "user_id", userID, "event", event)
		}
	}
}

// IsConnected reports whether the user has at least one open connection.
func (h *Hub) IsConnected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

// ClientCount returns the number of open connections across all users.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}
