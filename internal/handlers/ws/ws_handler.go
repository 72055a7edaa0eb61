// internal/handlers/ws/ws_handler.go
// WebSocket shell: one JSON-RPC response frame per inbound text frame.

package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	mcps "mcp-coingecko/internal/mcp"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from any origin; the shell carries no cookie
	// auth, so an origin check would gate nothing.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades the connection and serves JSON-RPC frames until the peer
// goes away. Frames are independent: every inbound text frame gets exactly
// one response frame, and a malformed frame never ends the connection.
func Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	log.Printf("websocket client connected: %s", conn.RemoteAddr())

	for {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[WARN] websocket read: %v", err)
			}
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		resp := mcps.HandleRaw(r.Context(), raw)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("[WARN] websocket write: %v", err)
			break
		}
	}
	log.Printf("websocket client disconnected: %s", conn.RemoteAddr())
}
