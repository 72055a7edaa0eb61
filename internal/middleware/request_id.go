// middleware/request_id.go
// Tags every request with an X-Request-ID for log correlation.

package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID keeps a caller-provided X-Request-ID or assigns a fresh uuid,
// echoing it back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
			r.Header.Set("X-Request-ID", reqID)
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}
