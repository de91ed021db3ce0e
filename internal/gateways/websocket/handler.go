package websocket

import (
	"net/http"

	"greeting-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and streams entity change events until the client leaves.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("Failed to upgrade connection",
			"client_ip", c.ClientIP(),
			"error", err,
		)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan utils.Event, 16),
		ID:   generateClientID(),
	}

	h.logger.Infow("WebSocket connection established",
		"client_id", client.ID,
		"client_ip", c.ClientIP(),
		"user_agent", c.GetHeader("User-Agent"),
	)

	if !h.join(client) {
		conn.Close()
		return
	}
	go client.writePump()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.leave(client)
}
