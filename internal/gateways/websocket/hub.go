package websocket

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync/atomic"
	"time"

	"greeting-api/internal/utils"

	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

type Client struct {
	hub  *Hub
	conn ClientConn
	send chan utils.Event
	ID   string
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// Hub relays entity change events from the event bus to every connected client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
	done       chan struct{}
	connected  atomic.Int64
}

func NewHub(logger *zap.Logger, eventBus *utils.EventBus) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		eventBus:   eventBus,
		logger:     logger.Sugar(),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("WebSocket Hub started")
	defer close(h.done)
	events := h.eventBus.SubscribeCh()

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			h.logger.Info("WebSocket Hub stopped")
			return

		case client := <-h.register:
			h.clients[client] = true
			h.connected.Store(int64(len(h.clients)))
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-events:
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					h.logger.Warnw("Client too slow, disconnecting", "client_id", client.ID, "event", event.Event)
					h.drop(client)
				}
			}
		}
	}
}

// join and leave give up once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.connected.Store(int64(len(h.clients)))
}

// Connected returns the number of registered clients.
func (h *Hub) Connected() int {
	return int(h.connected.Load())
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for event := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(event); err != nil {
			c.hub.logger.Debugw("Write failed", "client_id", c.ID, "error", err)
			return
		}
	}
}
