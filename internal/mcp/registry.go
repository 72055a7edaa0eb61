// mcp/registry.go
// Registry mapping tool names to their implementations.

package mcp

import (
	"context"
	"encoding/json"
	"sync"
)

// ToolFunc executes one tool call. A non-nil *RPCError becomes the error
// envelope of the response, otherwise the ToolResult is the result payload.
type ToolFunc func(ctx context.Context, args json.RawMessage) (ToolResult, *RPCError)

// Registry stores the tool name -> ToolFunc map, safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	data map[string]ToolFunc
}

var reg = &Registry{
	data: make(map[string]ToolFunc),
}

// Register binds fn to a tool name.
// An existing binding under the same name is overwritten.
func Register(name string, fn ToolFunc) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.data[name] = fn
}

// Get returns the ToolFunc for a tool name.
// Returns (fn, true) when registered, (nil, false) otherwise.
func Get(name string) (ToolFunc, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	fn, ok := reg.data[name]
	return fn, ok
}

// List returns the names of all registered tools.
func List() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	keys := make([]string, 0, len(reg.data))
	for k := range reg.data {
		keys = append(keys, k)
	}
	return keys
}
