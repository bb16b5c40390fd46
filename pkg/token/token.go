// Package token generates short random identifiers used to stand in for
// protected markup spans during a lossy transformation.
package token

// Token is a short random alphanumeric identifier.
type Token string

// Length is the number of characters in a token.
//
// The alphabet is large relative to the number of tokens generated per
// document, so tokens are probabilistically unique and no collision-retry
// logic is required.
const Length = 10

// String returns the token as a string.
func (t Token) String() string {
	return string(t)
}

/* Constructors */

func New() Token {
	return generator.New()
}
