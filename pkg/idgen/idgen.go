package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator issues opaque identifiers that are unique for the lifetime of
// the process. No ordering is guaranteed.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

func New() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Sequential is a deterministic generator for tests.
type Sequential struct {
	prefix  string
	counter uint64
}

func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (g *Sequential) NewID() string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("%s-%d", g.prefix, n)
}
