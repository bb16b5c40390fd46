package token

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var generator Generator = &UniqueGenerator{}

/* Generator */

type Generator interface {
	New() Token
}

// Reset restores the original unique token generator.
// Useful in tests with a defer after overriding the default generator.
func Reset() {
	generator = &UniqueGenerator{}
}

/*
 * UniqueGenerator
 */

// UniqueGenerator is a production-grade Generator returning unique, random tokens.
type UniqueGenerator struct{}

func NewUniqueGenerator() *UniqueGenerator {
	return &UniqueGenerator{}
}

// New generates a token.
// Every call generates a new unique token.
func (g *UniqueGenerator) New() Token {
	// A UUIDv4 stripped of its dashes leaves 32 hexadecimal characters,
	// more than enough to cut a fresh alphanumeric token from.
	value := strings.ReplaceAll(uuid.New().String(), "-", "")[0:Length]
	return Token(value)
}

/*
 * SequenceGenerator
 */

// SequenceGenerator returns numbered tokens in a predictable format.
// This generator is useful for tests when checking transformed output.
type SequenceGenerator struct {
	count int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{count: 0}
}

func (g *SequenceGenerator) New() Token {
	g.count++
	return Token(fmt.Sprintf("%0*d", Length, g.count))
}

/*
 * FixedGenerator
 */

// FixedGenerator returns always the same token.
// This generator is useful for tests when a single token is expected.
type FixedGenerator struct {
	token Token
}

func NewFixedGenerator(token Token) *FixedGenerator {
	return &FixedGenerator{token: token}
}

func (g *FixedGenerator) New() Token {
	return g.token
}
