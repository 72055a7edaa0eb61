// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	hh "mcp-coingecko/internal/handlers/http"
	"mcp-coingecko/internal/middleware"
)

// RegisterRoutes wires the split-transport endpoints onto r.
func RegisterRoutes(r *mux.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// --- probes ---
	r.HandleFunc("/", hh.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", hh.ReadyHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)

	// --- MCP split transport ---
	// GET /sse opens the single active event stream; POST /messages submits
	// JSON-RPC requests whose responses are relayed onto that stream.
	r.HandleFunc("/sse", hh.MCPSSEHandler).Methods(http.MethodGet)
	r.Handle("/messages", middleware.Auth(http.HandlerFunc(hh.MessagesHandler))).
		Methods(http.MethodPost, http.MethodOptions)
}
