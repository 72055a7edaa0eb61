// middleware/auth.go
// Optional shared-secret check on the message endpoints.

package middleware

import (
	"net/http"
	"os"
)

// Auth rejects requests whose X-API-Key does not match the API_KEY env var.
// With API_KEY unset the middleware is a no-op; the relay is open by default.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-Key")
		expected := os.Getenv("API_KEY")
		if expected != "" && apiKey != expected {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
