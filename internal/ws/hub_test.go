package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(h *Hub) *Client {
	return &Client{hub: h, send: make(chan []byte, 8)}
}

func TestHub_RegisterUnregister(t *testing.T) {
	h := NewHub()
	c := newTestClient(h)

	h.Register(c)
	assert.Equal(t, 1, h.ClientCount())

	h.Unregister(c)
	assert.Equal(t, 0, h.ClientCount())

	// Unregister closes the send channel.
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_UnregisterUnknownClient(t *testing.T) {
	h := NewHub()
	assert.NotPanics(t, func() { h.Unregister(newTestClient(h)) })
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	h := NewHub()
	c1 := newTestClient(h)
	c2 := newTestClient(h)
	h.Register(c1)
	h.Register(c2)

	h.Broadcast([]byte("hello"))

	assert.Equal(t, []byte("hello"), <-c1.send)
	assert.Equal(t, []byte("hello"), <-c2.send)
}

func TestHub_BroadcastSkipsFullBuffers(t *testing.T) {
	h := NewHub()
	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)

	h.Broadcast([]byte("one"))
	// Buffer is full now; this must not block.
	h.Broadcast([]byte("two"))

	assert.Equal(t, []byte("one"), <-c.send)
}
