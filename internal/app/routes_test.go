// internal/app/routes_test.go

package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	apppkg "mcp-coingecko/internal/app"
	mcphandlers "mcp-coingecko/internal/handlers/mcp"
)

// Sanity check: the probe endpoints answer 200.
func TestPublicRoutesHealthy(t *testing.T) {
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	for _, path := range []string{"/", "/healthz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on %s, got %d", path, rec.Code)
		}
	}
}

// "/" stays a plain-text liveness line.
func TestRootIsPlainText(t *testing.T) {
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain on /, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "running") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

// Unknown paths 404; /messages only accepts POST.
func TestUnknownAndWrongMethod(t *testing.T) {
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on /nope, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/messages", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code == http.StatusOK || rec.Code == http.StatusAccepted {
		t.Fatalf("expected non-2xx for GET /messages, got %d", rec.Code)
	}
}

// With API_KEY set, /messages requires the matching X-API-Key header.
func TestMessagesAuthGate(t *testing.T) {
	os.Setenv("API_KEY", "sekrit")
	defer os.Unsetenv("API_KEY")

	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{}`))
	req.Header.Set("X-API-Key", "sekrit")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code == http.StatusUnauthorized {
		t.Fatalf("expected the key to pass the gate, got 401")
	}
}

// Every response carries an X-Request-ID.
func TestRequestIDHeader(t *testing.T) {
	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected an X-Request-ID header")
	}
}

type fakePriceClient struct{}

func (fakePriceClient) SimplePrice(ctx context.Context, tokenID string) (float64, error) {
	return 100, nil
}

// /readyz answers 503 until the price client is wired, then 200.
func TestReadyzTracksWiring(t *testing.T) {
	defer mcphandlers.SetPriceClient(nil)

	r := mux.NewRouter()
	apppkg.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before wiring, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"price_client":false`) {
		t.Fatalf("unexpected readiness body: %s", rec.Body.String())
	}

	mcphandlers.SetPriceClient(fakePriceClient{})

	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after wiring, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected readiness body: %s", rec.Body.String())
	}
}
