// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-character-forge/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// DefaultBase36Length matches the 13 characters a character id has
	// always had.
	DefaultBase36Length = 13
)

// Base36Generator generates short random lowercase base-36 ids. Collisions
// are possible in principle and acceptable for character ids.
type Base36Generator struct {
	length int
}

// NewBase36 creates a base-36 generator producing ids of the given length.
// A non-positive length uses DefaultBase36Length.
func NewBase36(length int) *Base36Generator {
	if length <= 0 {
		length = DefaultBase36Length
	}
	return &Base36Generator{length: length}
}

// Generate creates a new base-36 id
func (g *Base36Generator) Generate() string {
	var sb strings.Builder
	sb.Grow(g.length)
	limit := big.NewInt(int64(len(base36Alphabet)))
	for i := 0; i < g.length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand only fails on a broken system
			panic(fmt.Sprintf("crypto/rand.Int failed: %v", err))
		}
		sb.WriteByte(base36Alphabet[n.Int64()])
	}
	return sb.String()
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
