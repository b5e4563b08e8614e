package push

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attach(h *Hub, userID string, buffer int) *Client {
	client := &Client{
		UserID: userID,
		hub:    h,
		send:   make(chan []byte, buffer),
	}
	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]bool)
	}
	h.clients[userID][client] = true
	h.mu.Unlock()
	return client
}

func TestPublishToUserDeliversFrame(t *testing.T) {
	h := NewHub(4)
	client := attach(h, "u1", 4)

	h.PublishToUser("u1", "notification", map[string]any{"title": "hello"})

	require.Len(t, client.send, 1)
	var event Event
	require.NoError(t, json.Unmarshal(<-client.send, &event))
	assert.Equal(t, "notification", event.Event)
}

func TestPublishToUserDropsWhenBufferFull(t *testing.T) {
	h := NewHub(1)
	client := attach(h, "u1", 1)

	// The second publish must not block even though the buffer is full.
	done := make(chan struct{})
	go func() {
		h.PublishToUser("u1", "notification", "first")
		h.PublishToUser("u1", "notification", "second")
		close(done)
	}()

	<-done
	assert.Len(t, client.send, 1)
}

func TestPublishToUnknownUserIsNoop(t *testing.T) {
	h := NewHub(4)
	assert.NotPanics(t, func() {
		h.PublishToUser("nobody", "notification", "payload")
	})
}

func TestPublishReachesEveryConnectionOfUser(t *testing.T) {
	h := NewHub(4)
	first := attach(h, "u1", 4)
	second := attach(h, "u1", 4)
	other := attach(h, "u2", 4)

	h.PublishToUser("u1", "chat_message", "hi")

	assert.Len(t, first.send, 1)
	assert.Len(t, second.send, 1)
	assert.Empty(t, other.send)
	assert.True(t, h.IsConnected("u1"))
	assert.False(t, h.IsConnected("u3"))
	assert.Equal(t, 3, h.ClientCount())
}
