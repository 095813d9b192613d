package services

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID string
	Conn   *websocket.Conn
}

// ProgressHub pushes derived dashboard state to connected clients. It keeps
// the last payload sent per user and drops byte-identical re-publishes, so a
// write that does not change the combined output never re-fires downstream.
type ProgressHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
	last    map[string][]byte
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{
		clients: make(map[string]map[*WSClient]struct{}),
		last:    make(map[string][]byte),
	}
}

func (h *ProgressHub) Register(c *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}

	// replay the last-known value so a fresh subscriber starts current; the
	// write happens under the lock so a concurrent publish cannot interleave
	if last := h.last[c.UserID]; last != nil {
		_ = c.Conn.WriteMessage(websocket.TextMessage, last)
	}
}

func (h *ProgressHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// PublishProgress delivers a snapshot to the user's subscribers. It returns
// false when the payload is identical to the previous one and nothing was
// sent. The last value is updated even with zero subscribers. Updating last
// and fanning out happen under one lock, so subscribers always receive
// payloads in the order last was written.
func (h *ProgressHub) PublishProgress(userID string, snapshot *ProgressSnapshot) bool {
	payload := map[string]any{
		"kind":     "progress.updated",
		"progress": snapshot,
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if bytes.Equal(h.last[userID], msg) {
		return false
	}
	h.last[userID] = msg
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
	return true
}

// Notify sends an event without deduplication; reminders may repeat.
func (h *ProgressHub) Notify(userID string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// LastPayload returns the most recent progress payload published for a user.
func (h *ProgressHub) LastPayload(userID string) []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last[userID]
}
