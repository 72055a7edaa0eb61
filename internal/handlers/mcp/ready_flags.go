// internal/handlers/mcp/ready_flags.go
package mcp

// Readiness flag per injected dependency, set from the matching Set*(..)
// call during app wiring.
var (
	readyPriceClient bool
)

// DepsStatus reports which tool dependencies are wired.
func DepsStatus() map[string]bool {
	return map[string]bool{
		"price_client": readyPriceClient,
	}
}
