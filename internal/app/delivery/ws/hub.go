// Package ws streams emergency room case events to connected dashboards.
// A hub fans incoming events out to every websocket client; events arrive
// over a Redis pub/sub channel so all API instances share one stream.
package ws

import (
	"context"
	"net/http"
	"sync"

	"medicore-service/internal/pkg/constvars"

	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client is a single connected board viewer.
type Client struct {
	Send chan []byte
}

// Hub tracks connected clients and broadcasts event payloads to all of
// them. All operations are safe for concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		log:     log,
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes the client and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
}

// Broadcast delivers a payload to every connected client. Clients with a
// full send buffer are skipped so one slow viewer cannot stall the rest.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RunSubscriber consumes the shared Redis channel and feeds every message
// into the hub. It blocks until the context is cancelled.
func (h *Hub) RunSubscriber(ctx context.Context, client *redis.Client) {
	pubsub := client.Subscribe(ctx, constvars.EmergencyRoomChannel)
	defer pubsub.Close()

	h.log.Info("ws hub subscribed",
		zap.String(constvars.LoggingChannelKey, constvars.EmergencyRoomChannel),
	)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.Broadcast([]byte(msg.Payload))
		}
	}
}

var upgrader = gorillawebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades the HTTP connection and starts the read and write pumps
// for the new client.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("ws upgrade failed", zap.Error(err))
		return
	}

	client := &Client{Send: make(chan []byte, 256)}
	h.Register(client)

	go h.writePump(client, conn)
	go h.readPump(client, conn)
}

// readPump drains inbound frames so pings and close frames are handled;
// viewers are receive-only and any payload they send is ignored.
func (h *Hub) readPump(client *Client, conn *gorillawebsocket.Conn) {
	defer func() {
		h.Unregister(client)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(client *Client, conn *gorillawebsocket.Conn) {
	defer conn.Close()

	for message := range client.Send {
		if err := conn.WriteMessage(gorillawebsocket.TextMessage, message); err != nil {
			break
		}
	}
}
