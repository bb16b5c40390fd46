package sanitize

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// styledTags are the elements whose style attribute is filtered.
// Styles on any other element are left to the purifier policy.
var styledTags = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "div", "blockquote", "pre",
	"strong", "em", "b", "i", "u", "a", "span", "img",
}

var (
	regexFontTag   = regexp.MustCompile(`(?i)</?font\b[^>]*>`)
	regexStyleAttr = regexp.MustCompile(`(?i)(<(?:` + strings.Join(styledTags, "|") + `)\b[^>]*?)\s+style="([^"]*)"`)
)

// RemoveInlineStyles strips every <font> tag and rewrites style attributes to
// retain only declarations whose property name is in the allow-set. The
// attribute is dropped entirely when nothing remains.
func RemoveInlineStyles(content string, allowedStyles map[string]bool) string {
	content = regexFontTag.ReplaceAllString(content, "")

	return regexStyleAttr.ReplaceAllStringFunc(content, func(match string) string {
		submatch := regexStyleAttr.FindStringSubmatch(match)
		prefix, styles := submatch[1], submatch[2]

		// The parser only closes a declaration on ";" or "}": without a
		// trailing semicolon the last declaration comes back with an empty
		// value.
		styles = strings.TrimSpace(styles)
		if !strings.HasSuffix(styles, ";") {
			styles += ";"
		}

		declarations, err := parser.ParseDeclarations(styles)
		if err != nil {
			// Unparseable styles are dropped with the attribute
			return prefix
		}

		var kept []string
		for _, declaration := range declarations {
			if allowedStyles[strings.ToLower(declaration.Property)] {
				kept = append(kept, declaration.Property+": "+declaration.Value)
			}
		}
		if len(kept) == 0 {
			return prefix
		}
		return prefix + ` style="` + strings.Join(kept, "; ") + `"`
	})
}
