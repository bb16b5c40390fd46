package sanitize

import (
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-fieldwriter/pkg/text"
)

// emptyTags are the elements removed when they enclose no content at all.
var emptyTags = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "div", "blockquote", "pre",
	"strong", "em", "b", "i", "u", "a", "span",
}

// Regex to match an empty open/close pair.
// RE2 supports no backreferences, so the alternation enumerates every tag.
var regexEmptyTag = regexp.MustCompile(`(?i)(?:` + strings.Join(emptyTagPatterns(), "|") + `)`)

func emptyTagPatterns() []string {
	var patterns []string
	for _, tag := range emptyTags {
		patterns = append(patterns, `<`+tag+`\s*></`+tag+`\s*>`)
	}
	return patterns
}

// RemoveEmptyTags removes empty element pairs in a single pass.
// Pairs that become empty as a result of a removal are not re-scanned.
func RemoveEmptyTags(content string) string {
	return regexEmptyTag.ReplaceAllString(content, "")
}

// Regex to match a non-breaking space: entity, numeric reference, or the
// literal code point.
var regexNbsp = regexp.MustCompile(`&nbsp;|&#160;|\x{00A0}`)

// RemoveNbsp replaces every non-breaking space with a regular space and
// collapses the resulting runs of spaces.
func RemoveNbsp(content string) string {
	content = regexNbsp.ReplaceAllString(content, " ")
	return text.CollapseSpaces(content)
}
