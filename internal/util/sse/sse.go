// [FILE] internal/util/sse/sse.go
// Helpers for writing server-sent events.

package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Flusher interface {
	Flush()
}

// PrepareSSE sets the event-stream headers and returns the writer's flusher,
// nil when the writer cannot stream.
func PrepareSSE(w http.ResponseWriter) Flusher {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // Nginx: disable buffering
	flusher, _ := w.(http.Flusher)
	return flusher
}

// WriteEvent emits one named event. Non-string payloads are JSON-marshaled;
// strings pass through untouched.
func WriteEvent(w http.ResponseWriter, flusher Flusher, event string, v any) error {
	var payload string
	switch data := v.(type) {
	case string:
		payload = data
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		payload = string(b)
	}
	if event != "" {
		fmt.Fprintf(w, "event: %s\n", event)
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)

	if flusher != nil {
		flusher.Flush()
	}
	return nil
}
