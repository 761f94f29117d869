package api

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/service/pubsub"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

func newTestWebSocketHandler() *WebSocketHandler {
	log := logger.NewLogger("test")
	return NewWebSocketHandler(log, pubsub.NewRedisPubSub(nil, log))
}

func activityEntry(companyID string) *domain.ActivityLog {
	return &domain.ActivityLog{
		ID:        "a1",
		CompanyID: &companyID,
		Action:    "CREATE",
		Entity:    "lease",
		EntityID:  "l1",
	}
}

func (h *WebSocketHandler) addClient(client *Client) {
	h.mutex.Lock()
	h.clients[client] = true
	h.companyClients[client.companyID]++
	h.mutex.Unlock()
}

func TestHandlePubSubMessage_DeliversToCompanyClients(t *testing.T) {
	h := newTestWebSocketHandler()

	c1Client := &Client{companyID: "c1", send: make(chan []byte, 1)}
	c2Client := &Client{companyID: "c2", send: make(chan []byte, 1)}
	h.addClient(c1Client)
	h.addClient(c2Client)

	h.handlePubSubMessage(activityEntry("c1"))

	require.Len(t, c1Client.send, 1)
	assert.Empty(t, c2Client.send)

	var resp dto.ActivityLogResponse
	require.NoError(t, json.Unmarshal(<-c1Client.send, &resp))
	assert.Equal(t, "lease", resp.Entity)
	assert.Equal(t, "l1", resp.EntityID)
}

func TestHandlePubSubMessage_DropsSlowClient(t *testing.T) {
	h := newTestWebSocketHandler()

	// Unbuffered channel with no reader: every send would block, so the
	// client counts as slow on the first fan-out.
	slow := &Client{companyID: "c1", send: make(chan []byte)}
	h.addClient(slow)

	h.handlePubSubMessage(activityEntry("c1"))

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	assert.Empty(t, h.clients)
	assert.Empty(t, h.companyClients)

	_, open := <-slow.send
	assert.False(t, open)
}

func TestHandlePubSubMessage_ConcurrentFanOutWithSlowClients(t *testing.T) {
	h := newTestWebSocketHandler()

	for i := 0; i < 8; i++ {
		h.addClient(&Client{companyID: "c1", send: make(chan []byte)})
	}
	entry := activityEntry("c1")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.handlePubSubMessage(entry)
			}
		}()
	}
	wg.Wait()

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	assert.Empty(t, h.clients)
	assert.Empty(t, h.companyClients)
}
