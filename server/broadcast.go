package server

import (
	"sync"

	"go.uber.org/zap"
)

// hub tracks websocket clients and fans stats snapshots out to them
type hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
	logger  *zap.SugaredLogger
}

func newHub(logger *zap.SugaredLogger) *hub {
	return &hub{
		clients: make(map[*client]bool),
		logger:  logger,
	}
}

func (h *hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Debugw("WebSocket client connected", "client_id", c.id, "clients", total)
}

func (h *hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Debugw("WebSocket client disconnected", "client_id", c.id, "clients", total)
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// broadcast sends msg to all connected clients.
// Returns the number of clients that accepted the message (channel not full).
func (h *hub) broadcast(msg interface{}) int {
	// Read lock keeps unregister from closing a channel mid-send
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for c := range h.clients {
		select {
		case c.send <- msg:
			sent++
		default:
			// Slow client - skip, the next run sends a fresh snapshot anyway
			h.logger.Debugw("Dropped snapshot for slow client", "client_id", c.id)
		}
	}
	return sent
}

// closeAll disconnects every client (server shutdown)
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}
