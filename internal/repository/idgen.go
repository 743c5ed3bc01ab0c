package repository

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator assigns identifiers to newly created posts. Implementations
// must return a process-unique value on every call and be safe for
// concurrent use.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// CounterIDGenerator issues "1", "2", "3"... The zero value is ready to use.
type CounterIDGenerator struct {
	next atomic.Uint64
}

func (g *CounterIDGenerator) NewID() string {
	return strconv.FormatUint(g.next.Add(1), 10)
}

// NewIDGenerator returns the generator for a configured strategy name.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "uuid", "":
		return UUIDGenerator{}, nil
	case "counter":
		return &CounterIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
