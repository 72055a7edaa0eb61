// pkg/coingecko/client.go
// HTTP client for the CoinGecko simple-price endpoint.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const defaultAPIBase = "https://api.coingecko.com/api/v3"

// The relay answers in USD only.
const vsCurrency = "usd"

// ErrMissingTokenID is returned before any network call when the token id is
// empty. The message text is part of the relay's client-facing contract.
var ErrMissingTokenID = errors.New("Invalid or missing token_id parameter.")

// TokenNotFoundError means CoinGecko answered but carried no price data for
// the requested token id.
type TokenNotFoundError struct {
	TokenID string
}

func (e *TokenNotFoundError) Error() string {
	return "Could not find price data for token ID: " + e.TokenID
}

// UpstreamError carries a non-2xx CoinGecko response.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("CoinGecko API error: status %d: %s", e.StatusCode, e.Body)
}

// ======================
// Interface
// ======================

// Client is the price-lookup contract the delivery shells depend on.
type Client interface {
	// SimplePrice returns the current USD price for one CoinGecko token id.
	SimplePrice(ctx context.Context, tokenID string) (float64, error)
}

// ======================
// HTTP implementation
// ======================

type HTTPClient struct {
	base  string
	httpc *http.Client
}

// New builds a client against base (default: the public CoinGecko API).
// A nil httpc falls back to http.DefaultClient; lookups run with the HTTP
// client's own defaults, there is no extra timeout layer here.
func New(base string, httpc *http.Client) *HTTPClient {
	if strings.TrimSpace(base) == "" {
		base = defaultAPIBase
	}
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &HTTPClient{base: strings.TrimRight(base, "/"), httpc: httpc}
}

// NewFromEnv reads COINGECKO_API_BASE (optional, for proxies and tests).
func NewFromEnv() *HTTPClient {
	return New(os.Getenv("COINGECKO_API_BASE"), nil)
}

// SimplePrice performs a single GET /simple/price call. No retries, no
// caching: every call hits the upstream once.
func (c *HTTPClient) SimplePrice(ctx context.Context, tokenID string) (float64, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return 0, ErrMissingTokenID
	}

	q := url.Values{}
	q.Set("ids", tokenID)
	q.Set("vs_currencies", vsCurrency)
	endpoint := c.base + "/simple/price?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("coingecko: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("coingecko: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	// Success shape: {"<tokenID>": {"usd": <price>}}
	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("coingecko: decode response: %w", err)
	}

	entry, ok := payload[tokenID]
	if !ok {
		return 0, &TokenNotFoundError{TokenID: tokenID}
	}
	price, ok := entry[vsCurrency]
	if !ok {
		return 0, &TokenNotFoundError{TokenID: tokenID}
	}
	return price, nil
}
