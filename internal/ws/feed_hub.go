package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mexicoindia/membership-backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
)

// FeedEvent is pushed to connected admin dashboards when an application
// is accepted.
type FeedEvent struct {
	Type       string            `json:"type"`
	Membership models.Membership `json:"membership"`
}

// FeedHub fans accepted submissions out to admin websocket clients.
// Delivery is best-effort like email: a client that cannot keep up is
// dropped, never waited on.
type FeedHub struct {
	register   chan *feedClient
	unregister chan *feedClient
	broadcast  chan []byte
	clients    map[*feedClient]struct{}
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*feedClient]struct{}),
	}
}

func (h *FeedHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.conn.Close()
			}
		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					delete(h.clients, client)
					close(client.send)
					client.conn.Close()
				}
			}
		}
	}
}

// Broadcast pushes an accepted membership to every connected client.
// Safe to call on a nil hub.
func (h *FeedHub) Broadcast(m models.Membership) {
	if h == nil {
		return
	}
	data, err := json.Marshal(FeedEvent{Type: "membership.accepted", Membership: m})
	if err != nil {
		log.Error().Err(err).Msg("feed payload marshal failed")
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Warn().Msg("feed broadcast buffer full, event dropped")
	}
}

type feedClient struct {
	hub  *FeedHub
	conn *websocket.Conn
	send chan []byte
}

func newFeedClient(hub *FeedHub, conn *websocket.Conn) *feedClient {
	return &feedClient{hub: hub, conn: conn, send: make(chan []byte, sendBufferSize)}
}

func (c *feedClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
