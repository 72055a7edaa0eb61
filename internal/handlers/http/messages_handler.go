// internal/handlers/http/messages_handler.go
// Split transport, message half: POST /messages feeds the active stream.

package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	mcps "mcp-coingecko/internal/mcp"
)

type messageAck struct {
	Status       string `json:"status"`
	ConnectionID string `json:"connection_id,omitempty"`
	Delivered    bool   `json:"delivered"`
	Reason       string `json:"reason,omitempty"`
}

// MessagesHandler accepts one JSON-RPC request per POST. The response
// envelope travels over the active SSE stream as one mcp_message event; the
// POST answer only acknowledges the hand-off. An optional ?connection_id=
// pins the relay to a specific stream instead of whichever is active.
func MessagesHandler(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body error", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	connID := r.URL.Query().Get("connection_id")

	// Envelope problems answer 400 with the JSON-RPC error as the body; the
	// same envelope is mirrored onto the stream when one is live.
	req, errResp := mcps.ParseRequest(raw)
	if errResp == nil {
		if rpcErr := mcps.ValidateEnvelope(req); rpcErr != nil {
			errResp = mcps.NewError(req.ID, rpcErr)
		}
	}
	if errResp != nil {
		relayToStream(connID, errResp)
		writeJSON(w, http.StatusBadRequest, errResp)
		return
	}

	resp := mcps.HandleRequest(r.Context(), req)
	deliveredTo, delivered := relayToStream(connID, resp)

	ack := messageAck{Status: "accepted", ConnectionID: deliveredTo, Delivered: delivered}
	if !delivered {
		ack.Reason = "no active SSE connection"
		log.Printf("[WARN] mcp_message dropped, no active SSE stream (connection_id=%q)", connID)
	}
	writeJSON(w, http.StatusAccepted, ack)
}

// relayToStream pushes one response envelope onto the resolved stream.
func relayToStream(connID string, resp *mcps.Response) (string, bool) {
	stream, ok := streams.Resolve(connID)
	if !ok {
		return "", false
	}
	if err := stream.Send("mcp_message", resp); err != nil {
		log.Printf("[WARN] write to SSE stream %s failed: %v", stream.ID, err)
		return "", false
	}
	return stream.ID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
