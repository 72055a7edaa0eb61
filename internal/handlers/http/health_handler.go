// internal/handlers/http/health_handler.go
// Liveness and readiness probes.

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mcp-coingecko/internal/config"
	mcphandlers "mcp-coingecko/internal/handlers/mcp"
	mcps "mcp-coingecko/internal/mcp"
)

// RootHandler answers "/" with a short informational line. Kept as plain text
// so a browser hit shows the relay is alive.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "CoinGecko MCP relay is running.")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":  "ok",
		"version": config.BuildVersion,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ReadyHandler reports whether the relay can serve tool calls: the price
// client must be wired and the embedded tool catalog must parse. Until then
// it answers 503 so a load balancer keeps traffic away.
func ReadyHandler(w http.ResponseWriter, r *http.Request) {
	deps := mcphandlers.DepsStatus()
	_, catErr := mcps.LoadToolDefs()
	deps["tool_catalog"] = catErr == nil

	ready := true
	for _, ok := range deps {
		if !ok {
			ready = false
			break
		}
	}

	status := http.StatusOK
	state := "ok"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"status": state,
		"deps":   deps,
	})
}
