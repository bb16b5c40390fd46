// Package resolve implements the display-time stage: reference tags embedded
// in href/src attributes are replaced by their resolved URLs.
package resolve

import (
	"html"
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
)

// Regex to match a reference tag inside a quoted href/src attribute value,
// optionally followed by a literal query string and hash fragment.
// RE2 supports no backreferences, so the pattern is instantiated per quote
// character instead of matching the closing quote with \2.
var regexTagAttrs = []*regexp.Regexp{
	tagAttrPattern(`"`),
	tagAttrPattern(`'`),
}

func tagAttrPattern(q string) *regexp.Regexp {
	return regexp.MustCompile(
		`(href=|src=)` + q +
			`\{(` + refs.Pattern + `)(\|\|[^}]+)?\}` +
			`(\?[^` + q + `#]*)?(#[^` + q + `]*)?` + q)
}

// Resolve replaces every reference tag found in an href/src attribute by its
// resolved URL, preserving the original tag as a URL fragment suffix so the
// raw form can be recovered exactly from the output.
//
// Unresolvable tags leave their markup untouched. Running Resolve on its own
// output is a no-op: resolved attributes contain no tag anymore.
func Resolve(content string, siteID int, resolver refs.Resolver) string {
	if !strings.Contains(content, "{") {
		return content
	}

	for _, re := range regexTagAttrs {
		content = re.ReplaceAllStringFunc(content, func(match string) string {
			submatch := re.FindStringSubmatch(match)
			attr, ref, fallback, query, hash := submatch[1], submatch[2], submatch[3], submatch[4], submatch[5]
			quote := match[len(match)-1:]

			tag := "{" + ref + fallback + "}"
			resolved := resolver.ResolveTag(tag, siteID)
			if resolved == tag {
				// The tag could not be resolved: leave the markup as-is.
				// The literal tag stays visible rather than corrupting the
				// stored content.
				return match
			}

			url := resolved
			var remainder string
			// A trailing query/hash already present in the resolved value is
			// redundant (the target's own URL format encodes it): fold it into
			// the URL instead of repeating it in the remainder.
			if query != "" {
				if strings.Contains(resolved, html.UnescapeString(query)) {
					url += query
				} else {
					remainder += query
				}
			}
			if hash != "" {
				if strings.Contains(resolved, html.UnescapeString(hash)) {
					url += hash
				} else {
					remainder += hash
				}
			}

			return attr + quote + url + remainder + "#" + ref + quote
		})
	}

	return content
}
