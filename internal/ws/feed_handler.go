package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origin checks happen in the router middleware; the upgrade
		// itself is gated by admin auth.
		return true
	},
}

// FeedHandler upgrades an authenticated admin connection onto the hub.
// Auth middleware must run before this handler.
func FeedHandler(hub *FeedHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := newFeedClient(hub, conn)
		hub.register <- client

		go client.writePump()
		client.readPump()
	}
}
