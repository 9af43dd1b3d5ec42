package websocket

import (
	"strings"

	"github.com/gofiber/websocket/v2"
)

// ServeWs handles websocket requests from an authenticated peer.
func ServeWs(hub *Hub, c *websocket.Conn, email string, moderator bool) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		Email:     strings.ToLower(email),
		Moderator: moderator,
		Send:      make(chan []byte, 256),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
