package websocket

import (
	"context"
	"sync"

	"brand-chatbot-be/internal/constant"
	"brand-chatbot-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub fans session events out to every connected admin dashboard. All
// clients see the same feed, so there is no per-user routing; Redis pub/sub
// relays events between instances.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Admin feed client connected", map[string]interface{}{
				"clients": h.clientCount(),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Admin feed client disconnected", map[string]interface{}{
				"clients": h.clientCount(),
			})
		}
	}
}

// Broadcast delivers the payload to every connected dashboard. With Redis
// available the payload goes through pub/sub so all instances (this one
// included) deliver it exactly once; without Redis delivery is local only.
func (h *Hub) Broadcast(payload []byte) {
	if h.rdb != nil {
		h.rdb.Publish(context.Background(), constant.AdminFeedChannel, payload)
		return
	}
	h.broadcastLocal(payload)
}

func (h *Hub) broadcastLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			// Slow consumer, drop the connection rather than the feed.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, constant.AdminFeedChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.broadcastLocal([]byte(msg.Payload))
	}
}
