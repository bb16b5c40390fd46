// Package svg protects inline SVG markup from the generic HTML sanitizer.
//
// SVG elements are not part of the sanitizer allow-lists and would be mangled
// or stripped. Tokenize swaps every inline SVG for an opaque placeholder
// before sanitization; Restore puts the sanitized SVG markup back afterwards.
package svg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-fieldwriter/pkg/token"
)

// Sanitizer cleans a standalone SVG document.
// A failure is fatal for the whole save: silently dropping SVG content could
// silently destroy authored content.
type Sanitizer func(markup string) (string, error)

// PlaceholderPrefix starts every placeholder left in the document.
const PlaceholderPrefix = "svg:"

// Regex to match inline SVG blocks: case-insensitive, shortest spans,
// across multiple lines.
var regexSVG = regexp.MustCompile(`(?isU)<svg\b.*>.*</svg>`)

// Tokenize replaces every inline SVG block with a fresh placeholder and
// returns the placeholder-to-markup map needed by Restore.
// Each block is sanitized before being stored in the map.
func Tokenize(content string, sanitize Sanitizer) (string, map[string]string, error) {
	tokens := make(map[string]string)

	matches := regexSVG.FindAllStringIndex(content, -1)
	if matches == nil {
		return content, tokens, nil
	}

	var sb strings.Builder
	last := 0
	for _, match := range matches {
		markup := content[match[0]:match[1]]
		sanitized, err := sanitize(markup)
		if err != nil {
			return "", nil, fmt.Errorf("unable to sanitize inline svg: %w", err)
		}
		placeholder := PlaceholderPrefix + token.New().String()
		tokens[placeholder] = sanitized

		sb.WriteString(content[last:match[0]])
		sb.WriteString(placeholder)
		last = match[1]
	}
	sb.WriteString(content[last:])

	return sb.String(), tokens, nil
}

// Restore substitutes every placeholder back to its sanitized markup.
// The substitution is literal. Placeholders missing from the content are
// ignored; unknown placeholders left in the content stay as-is.
func Restore(content string, tokens map[string]string) string {
	for placeholder, markup := range tokens {
		content = strings.ReplaceAll(content, placeholder, markup)
	}
	return content
}
