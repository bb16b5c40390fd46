package token

import "testing"

// UseFixed configures a fixed token value
func UseFixed(t *testing.T, value Token) {
	generator = NewFixedGenerator(value)
	t.Cleanup(Reset)
}

// UseSequence configures a predefined sequence
func UseSequence(t *testing.T) {
	generator = NewSequenceGenerator()
	t.Cleanup(Reset)
}
