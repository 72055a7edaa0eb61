// internal/handlers/http/price_sse_handler_test.go

package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	hh "mcp-coingecko/internal/handlers/http"
	"mcp-coingecko/pkg/coingecko"
)

// fakeClient implements coingecko.Client without the network.
type fakeClient struct {
	price float64
	err   error
}

func (f fakeClient) SimplePrice(ctx context.Context, tokenID string) (float64, error) {
	if strings.TrimSpace(tokenID) == "" {
		return 0, coingecko.ErrMissingTokenID
	}
	if f.err != nil {
		return 0, f.err
	}
	return f.price, nil
}

// The burst is status -> price -> status, in order, then the handler returns.
func TestPriceSSEBurst(t *testing.T) {
	hh.SetPriceClient(fakeClient{price: 65000})

	req := httptest.NewRequest(http.MethodGet, "/sse?token_id=bitcoin", nil)
	rec := httptest.NewRecorder()
	hh.PriceSSEHandler(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected text/event-stream, got %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Fatalf("expected no-cache, got %q", cc)
	}

	body := rec.Body.String()
	iConn := strings.Index(body, `data: {"message":"Connected to CoinGecko price stream."}`)
	iPrice := strings.Index(body, `data: {"token_id":"bitcoin","price":65000}`)
	iClose := strings.Index(body, `data: {"message":"Closing connection."}`)
	if iConn < 0 || iPrice < 0 || iClose < 0 {
		t.Fatalf("missing events in burst:\n%s", body)
	}
	if !(iConn < iPrice && iPrice < iClose) {
		t.Fatalf("events out of order:\n%s", body)
	}
	if !strings.Contains(body, "event: price\n") {
		t.Fatalf("price event not named:\n%s", body)
	}
}

// A missing token_id turns the price event into an error event; the closing
// status is still sent.
func TestPriceSSEMissingToken(t *testing.T) {
	hh.SetPriceClient(fakeClient{price: 65000})

	req := httptest.NewRequest(http.MethodGet, "/sse", nil)
	rec := httptest.NewRecorder()
	hh.PriceSSEHandler(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `data: {"message":"Invalid or missing token_id parameter."}`) {
		t.Fatalf("expected the missing-token error event:\n%s", body)
	}
	if strings.Contains(body, "event: price\n") {
		t.Fatalf("unexpected price event:\n%s", body)
	}
	if !strings.Contains(body, `data: {"message":"Closing connection."}`) {
		t.Fatalf("expected the closing status:\n%s", body)
	}
}

// Upstream misses surface the lookup error text as the error event.
func TestPriceSSEUnknownToken(t *testing.T) {
	hh.SetPriceClient(fakeClient{err: &coingecko.TokenNotFoundError{TokenID: "dogecoin2"}})

	req := httptest.NewRequest(http.MethodGet, "/sse?token_id=dogecoin2", nil)
	rec := httptest.NewRecorder()
	hh.PriceSSEHandler(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `data: {"message":"Could not find price data for token ID: dogecoin2"}`) {
		t.Fatalf("expected lookup error event:\n%s", body)
	}
}

// Fractional prices keep their decimals in the event payload.
func TestPriceSSEFractionalPrice(t *testing.T) {
	hh.SetPriceClient(fakeClient{price: 4123.45})

	req := httptest.NewRequest(http.MethodGet, "/sse?token_id=ethereum", nil)
	rec := httptest.NewRecorder()
	hh.PriceSSEHandler(rec, req)

	if !strings.Contains(rec.Body.String(), `data: {"token_id":"ethereum","price":4123.45}`) {
		t.Fatalf("unexpected price payload:\n%s", rec.Body.String())
	}
}
