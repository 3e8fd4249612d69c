package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const defaultSize = 8

// Generator creates opaque request identifiers.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{size: defaultSize}
}

func (g *RandomGenerator) NewID() (string, error) {
	size := defaultSize
	if g != nil && g.size > 0 {
		size = g.size
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Valid reports whether an inbound identifier is safe to echo and log.
func Valid(raw string) bool {
	if raw == "" || len(raw) > 64 {
		return false
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
