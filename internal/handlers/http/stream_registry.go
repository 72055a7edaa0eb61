// internal/handlers/http/stream_registry.go
// Active-stream slot for the split POST/SSE transport.

package http

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"mcp-coingecko/internal/util/sse"
)

var ErrStreamClosed = errors.New("sse stream closed")

// SSEStream is one live GET /sse subscriber.
type SSEStream struct {
	ID string

	w       http.ResponseWriter
	flusher sse.Flusher

	mu        sync.Mutex // serializes writes and fences Close
	done      chan struct{}
	closeOnce sync.Once
}

func NewSSEStream(id string, w http.ResponseWriter, flusher sse.Flusher) *SSEStream {
	return &SSEStream{ID: id, w: w, flusher: flusher, done: make(chan struct{})}
}

// Send writes one named event onto the stream.
func (s *SSEStream) Send(event string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return ErrStreamClosed
	default:
	}
	return sse.WriteEvent(s.w, s.flusher, event, v)
}

// Close marks the stream dead. It waits for an in-flight Send to finish, so
// after Close returns nothing touches the response writer again.
func (s *SSEStream) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		close(s.done)
		s.mu.Unlock()
	})
}

// Done signals eviction to the blocked /sse handler.
func (s *SSEStream) Done() <-chan struct{} { return s.done }

// StreamRegistry holds at most one active stream. Registering a new stream
// closes and evicts the previous one; removal is keyed by connection id so a
// stale handler can never clear a newer stream.
type StreamRegistry struct {
	mu     sync.RWMutex
	active *SSEStream
}

func NewStreamRegistry() *StreamRegistry { return &StreamRegistry{} }

// shared by the /sse and /messages handlers
var streams = NewStreamRegistry()

// Streams exposes the shared registry (metrics, tests).
func Streams() *StreamRegistry { return streams }

// Register installs s as the active stream, closing any previous one.
func (reg *StreamRegistry) Register(s *SSEStream) {
	reg.mu.Lock()
	prev := reg.active
	reg.active = s
	reg.mu.Unlock()

	if prev != nil {
		log.Printf("[WARN] replacing active SSE stream %s with %s", prev.ID, s.ID)
		prev.Close()
	}
}

// Remove clears the slot only while id still names the active stream.
func (reg *StreamRegistry) Remove(id string) {
	reg.mu.Lock()
	if reg.active != nil && reg.active.ID == id {
		reg.active = nil
	}
	reg.mu.Unlock()
}

// Resolve returns the stream for id, or the active stream when id is empty.
func (reg *StreamRegistry) Resolve(id string) (*SSEStream, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	if reg.active == nil {
		return nil, false
	}
	if id != "" && reg.active.ID != id {
		return nil, false
	}
	return reg.active, true
}

// Len reports how many streams are live (0 or 1).
func (reg *StreamRegistry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	if reg.active == nil {
		return 0
	}
	return 1
}
