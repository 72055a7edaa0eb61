// internal/handlers/mcp/get_coingecko_price.go
// MCP Tool: get_coingecko_price - current USD price of a token via CoinGecko

package mcp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	mcps "mcp-coingecko/internal/mcp"
	"mcp-coingecko/pkg/coingecko"
)

// ToolGetCoingeckoPrice is the catalog name of this tool.
const ToolGetCoingeckoPrice = "get_coingecko_price"

// injected from app
var priceClient coingecko.Client

func SetPriceClient(c coingecko.Client) {
	priceClient = c
	readyPriceClient = c != nil
}

type priceArgs struct {
	TokenID string `json:"token_id"`
}

// GetCoingeckoPriceTool resolves arguments.token_id to a one-sentence USD
// price answer. Argument errors map to InvalidParams; lookup failures map to
// InternalError carrying the lookup error text.
func GetCoingeckoPriceTool(ctx context.Context, args json.RawMessage) (mcps.ToolResult, *mcps.RPCError) {
	var p priceArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &p); err != nil {
			return mcps.ToolResult{}, mcps.ErrInvalidParams("Invalid params: token_id must be a string")
		}
	}
	if priceClient == nil {
		return mcps.ToolResult{}, mcps.ErrInternal("price client not configured")
	}

	tokenID := strings.TrimSpace(p.TokenID)
	price, err := priceClient.SimplePrice(ctx, tokenID)
	if err != nil {
		return mcps.ToolResult{}, mcps.ErrInternal(err.Error())
	}

	text := "The current price of " + tokenID + " is $" + strconv.FormatFloat(price, 'f', -1, 64) + " USD."
	return mcps.TextResult(text), nil
}
