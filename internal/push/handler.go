package push

import (
	"net/http"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the frontend origin once it is fixed in config.
		return true
	},
}

// ServeWS upgrades an authenticated request to a websocket and attaches
// it to the hub. Requires the auth middleware to have run.
func (h *Hub) ServeWS(c *gin.Context) {
	raw, _ := c.Get(string(contextkeys.UserIDKey))
	userID, ok := raw.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Warn("websocket upgrade failed", "user_id", userID)
		return
	}

	client := &Client{
		UserID: userID,
		conn:   conn,
		hub:    h,
		send:   make(chan []byte, h.sendBufferSize),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}
