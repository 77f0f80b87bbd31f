// Package ws streams simulation playback to browser clients. The day is
// computed in one shot by internal/sim; this package only fans the frames
// out and paces their delivery.
package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// sendBuffer is the per-client outbound queue. Playback frames are small
// and paced, so a slow client only hits the drop path when it stops
// reading entirely.
const sendBuffer = 256

// Client is one connected socket with its outbound queue.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected clients and fans broadcast frames out to them.
// All methods are safe for concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes the client and closes its queue, which ends its
// writePump. Unknown clients are ignored.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Broadcast queues msg for every client. Clients with a full queue miss
// the frame rather than stalling playback for everyone else.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			log.Printf("ws: dropping frame for slow client")
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// writePump drains the client's queue onto the socket until the queue is
// closed or a write fails.
func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
