// internal/server/router.go
package server

import (
	"net/http"

	"mcp-coingecko/internal/app"
	"mcp-coingecko/internal/config"
	mcphandlers "mcp-coingecko/internal/handlers/mcp"
	"mcp-coingecko/internal/handlers/ws"
	"mcp-coingecko/pkg/coingecko"
)

// NewMux wires the WebSocket shell. Every path upgrades; WebSocket clients
// do not care which route they dial.
func NewMux() *http.ServeMux {
	cfg := config.Load()
	mcphandlers.SetPriceClient(coingecko.New(cfg.CoinGecko.APIBase, nil))
	app.RegisterMCPTools()

	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.Handler)

	return mux
}
