package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/service/pubsub"
	"github.com/rentdesk/property-management-api/internal/utils"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn      *websocket.Conn
	companyID string
	send      chan []byte
}

type WebSocketHandler struct {
	clients        map[*Client]bool
	register       chan *Client
	unregister     chan *Client
	mutex          sync.RWMutex
	logger         *logger.Logger
	pubsub         *pubsub.RedisPubSub
	ctx            context.Context
	cancel         context.CancelFunc
	companyClients map[string]int // Count of clients per company
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:        make(map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		logger:         logger,
		pubsub:         pubsub,
		ctx:            ctx,
		cancel:         cancel,
		companyClients: make(map[string]int),
	}
}

// HandleWebSocket upgrades the connection and streams the caller's company
// activity feed. Streaming is keyed by company channel, so the caller must
// carry a company scope.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	v, exists := c.Get(string(utils.ActorKey))
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
		return
	}
	actor, ok := v.(*domain.Actor)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
		return
	}

	if _, err := authz.ScopeFor(actor, domain.KindActivityLog, authz.ActionList); err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if actor.CompanyID == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "company scope required for streaming"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &Client{
		conn:      conn,
		companyID: actor.CompanyID,
		send:      make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.companyClients[client.companyID]++

			// Subscribe to the company channel on the first client
			if h.companyClients[client.companyID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.companyID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to company %s: %v", client.companyID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeClientLocked(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// handlePubSubMessage fans an activity entry received from Redis out to the
// connected clients of its company.
func (h *WebSocketHandler) handlePubSubMessage(entry *domain.ActivityLog) {
	message, err := json.Marshal(dto.FromActivityLog(entry))
	if err != nil {
		h.logger.Errorf("Error marshaling activity entry: %v", err)
		return
	}

	companyID := ""
	if entry.CompanyID != nil {
		companyID = *entry.CompanyID
	}

	// Dropping a slow client mutates the client maps, so fan-out holds the
	// write lock. Sends stay non-blocking.
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.companyID != companyID {
			continue
		}
		select {
		case client.send <- message:
		default: // Channel full, drop the slow client
			h.removeClientLocked(client)
		}
	}
}

// removeClientLocked drops a client and tears down the company subscription
// when it was the last one. Callers must hold the write lock.
func (h *WebSocketHandler) removeClientLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.companyClients[client.companyID]--
	if h.companyClients[client.companyID] == 0 {
		h.pubsub.Unsubscribe(client.companyID)
		delete(h.companyClients, client.companyID)
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.companyID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.companyID, err)
			}
			break
		}

		// Clients are not expected to send anything
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.companyID, string(message))
		}
	}
}
