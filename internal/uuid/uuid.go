// uuid provides die-instance identifiers behind a small interface so
// tests can substitute predictable values
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating unique IDs
type Generator interface {
	New() string
}

// googleGenerator implements Generator using Google's UUID package
type googleGenerator struct{}

// New generates a new UUID string
func (g *googleGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleGenerator creates the default UUID-backed generator
func NewGoogleGenerator() Generator {
	return &googleGenerator{}
}
