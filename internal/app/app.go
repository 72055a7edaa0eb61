// internal/app/app.go
package app

import (
	"github.com/gorilla/mux"

	"mcp-coingecko/internal/config"
	hh "mcp-coingecko/internal/handlers/http"
	mcphandlers "mcp-coingecko/internal/handlers/mcp"
	"mcp-coingecko/internal/mcp"
	"mcp-coingecko/pkg/coingecko"
)

// App holds the split-transport router (POST /messages + GET /sse).
type App struct {
	Router *mux.Router
}

// New builds the app: upstream client injection, MCP tool registration,
// routes and middleware.
func New() *App {
	r := mux.NewRouter()

	cfg := config.Load()

	// === Inject upstream client into the handlers ===
	client := coingecko.New(cfg.CoinGecko.APIBase, nil)
	mcphandlers.SetPriceClient(client)
	hh.SetPriceClient(client)

	// ---- HTTP routes + middleware ----
	RegisterRoutes(r)

	// ---- MCP tools ----
	RegisterMCPTools()

	return &App{Router: r}
}

// ----------------- MCP Wiring -----------------

// RegisterMCPTools registers every catalog tool into the registry.
func RegisterMCPTools() {
	mcp.Register(mcphandlers.ToolGetCoingeckoPrice, mcphandlers.GetCoingeckoPriceTool)
}
