package id

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a time-ordered UUIDv7 so ledger rows sort by creation.
func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}
	return v.String(), nil
}

// Sequence hands out predictable ids, for fixtures and tests.
type Sequence struct {
	Prefix string
	next   atomic.Int64
}

func (s *Sequence) NewID() (string, error) {
	return fmt.Sprintf("%s%d", s.Prefix, s.next.Add(1)), nil
}
