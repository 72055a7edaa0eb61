// internal/app/routes_sse.go
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mcp-coingecko/internal/config"
	hh "mcp-coingecko/internal/handlers/http"
	"mcp-coingecko/internal/middleware"
	"mcp-coingecko/pkg/coingecko"
)

// NewSSERouter builds the synchronous SSE shell: GET /sse?token_id=X answers
// with one short event burst and closes. Unknown paths fall through to chi's
// standard 404.
func NewSSERouter() http.Handler {
	cfg := config.Load()
	hh.SetPriceClient(coingecko.New(cfg.CoinGecko.APIBase, nil))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	r.Get("/", hh.RootHandler)
	r.Get("/sse", hh.PriceSSEHandler)

	return r
}
