// internal/handlers/http/price_sse_handler.go
// Synchronous SSE shell: one GET, one event burst, then close.

package http

import (
	"log"
	"net/http"
	"strings"

	"mcp-coingecko/internal/util/sse"
	"mcp-coingecko/pkg/coingecko"
)

// ----------------- Wiring price client -----------------
var priceClient coingecko.Client

// SetPriceClient is called from app wiring once the upstream client exists.
func SetPriceClient(c coingecko.Client) { priceClient = c }

type priceEvent struct {
	TokenID string  `json:"token_id"`
	Price   float64 `json:"price"`
}

// PriceSSEHandler answers GET /sse?token_id=X with a short burst over one
// connection: a status event, then price or error, then a closing status.
// The connection is never reused for a second lookup.
func PriceSSEHandler(w http.ResponseWriter, r *http.Request) {
	flusher := sse.PrepareSSE(w)
	if flusher == nil {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	// 1) greet the subscriber
	_ = sse.WriteEvent(w, flusher, "status", map[string]string{"message": "Connected to CoinGecko price stream."})

	// 2) resolve the price; an empty token id fails inside the client before
	//    any upstream call
	tokenID := strings.TrimSpace(r.URL.Query().Get("token_id"))

	if priceClient == nil {
		_ = sse.WriteEvent(w, flusher, "error", map[string]string{"message": "price client not configured"})
	} else if price, err := priceClient.SimplePrice(r.Context(), tokenID); err != nil {
		log.Printf("[WARN] price lookup failed (token_id=%q): %v", tokenID, err)
		_ = sse.WriteEvent(w, flusher, "error", map[string]string{"message": err.Error()})
	} else {
		_ = sse.WriteEvent(w, flusher, "price", priceEvent{TokenID: tokenID, Price: price})
	}

	// 3) end the burst; the handler return closes the connection
	_ = sse.WriteEvent(w, flusher, "status", map[string]string{"message": "Closing connection."})
}
