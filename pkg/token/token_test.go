package token_test

import (
	"testing"

	"github.com/julien-sobczak/the-fieldwriter/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestUniqueGenerator(t *testing.T) {
	g := token.NewUniqueGenerator()

	seen := make(map[token.Token]bool)
	for i := 0; i < 100; i++ {
		tok := g.New()
		assert.Len(t, tok.String(), token.Length)
		assert.Regexp(t, "^[a-z0-9]+$", tok.String())
		assert.False(t, seen[tok], "token %q generated twice", tok)
		seen[tok] = true
	}
}

func TestSequenceGenerator(t *testing.T) {
	token.UseSequence(t)
	assert.Equal(t, token.Token("0000000001"), token.New())
	assert.Equal(t, token.Token("0000000002"), token.New())
}

func TestFixedGenerator(t *testing.T) {
	token.UseFixed(t, "abcdef0123")
	assert.Equal(t, token.Token("abcdef0123"), token.New())
	assert.Equal(t, token.Token("abcdef0123"), token.New())
}
