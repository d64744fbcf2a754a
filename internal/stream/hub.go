package stream

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Status levels mirror the lifecycle of a pipeline stage.
const (
	LevelLoading = "loading"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// StatusEvent is a transient progress update for one pipeline stage.
type StatusEvent struct {
	Stage   string    `json:"stage"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type Hub struct {
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	SessionID string
	Send      chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients: map[string]map[*Client]struct{}{},
	}
}

func (h *Hub) Register(sessionID string) *Client {
	client := &Client{
		SessionID: sessionID,
		Send:      make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = map[*Client]struct{}{}
	}
	h.clients[sessionID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sessionClients, ok := h.clients[client.SessionID]; ok {
		delete(sessionClients, client)
		if len(sessionClients) == 0 {
			delete(h.clients, client.SessionID)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(sessionID string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[sessionID]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

// Notify broadcasts a StatusEvent to every client of the session. A nil
// hub or an empty session ID makes it a no-op, so services can emit
// status unconditionally.
func (h *Hub) Notify(sessionID, stage, level, message string) {
	if h == nil || sessionID == "" {
		return
	}

	payload, err := json.Marshal(StatusEvent{
		Stage:   stage,
		Level:   level,
		Message: message,
		At:      time.Now().UTC(),
	})
	if err != nil {
		log.Printf("status event marshal error: %v", err)
		return
	}
	h.Broadcast(sessionID, payload)
}
