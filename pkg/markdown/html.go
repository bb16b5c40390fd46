// Package markdown converts Markdown pasted by authors into HTML suitable for
// the sanitization pipeline.
package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML converts a Markdown document to HTML.
// The output is untrusted and must still go through sanitization.
func ToHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	html := markdown.ToHTML([]byte(md), p, nil)
	return strings.TrimSpace(string(html))
}
