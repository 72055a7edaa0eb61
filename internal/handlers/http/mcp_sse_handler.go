// internal/handlers/http/mcp_sse_handler.go
// Split transport, stream half: GET /sse holds the active event stream.

package http

import (
	"log"
	"net/http"

	"mcp-coingecko/internal/util"
	"mcp-coingecko/internal/util/sse"
)

// MCPSSEHandler registers the caller as the active stream and keeps the
// connection open. Responses to POST /messages arrive here as mcp_message
// events. A newer /sse connection evicts this one.
func MCPSSEHandler(w http.ResponseWriter, r *http.Request) {
	flusher := sse.PrepareSSE(w)
	if flusher == nil {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	stream := NewSSEStream(util.NewID(), w, flusher)
	streams.Register(stream)
	defer func() {
		stream.Close()
		streams.Remove(stream.ID)
	}()

	log.Printf("SSE stream %s connected", stream.ID)
	if err := stream.Send("connected", map[string]string{
		"connection_id": stream.ID,
		"message":       "SSE connection established. POST JSON-RPC messages to /messages.",
	}); err != nil {
		return
	}

	select {
	case <-r.Context().Done():
		log.Printf("SSE stream %s closed by client", stream.ID)
	case <-stream.Done():
		log.Printf("SSE stream %s replaced by a newer connection", stream.ID)
	}
}
