// internal/util/ids.go
// Simple ID generator for stream and request identifiers

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}
