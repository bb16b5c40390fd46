package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Purifier cleans untrusted HTML according to a Policy.
// Implementations must fail closed: markup they cannot interpret is escaped
// or dropped, never passed through.
type Purifier interface {
	Purify(content string, policy Policy) string
}

// Regex constraining id attributes when Attr.EnableID is set.
var regexElementID = regexp.MustCompile(`^[a-zA-Z][\w.:-]*$`)

// Regex matching an id attribute in sanitized output. bluemonday escapes
// every double quote occurring in text and attribute values, so this can
// only match a real attribute.
var regexIDAttr = regexp.MustCompile(`\s+id="[^"]*"`)

// BluemondayPurifier is the default Purifier, backed by an allow-list
// bluemonday policy derived from the Policy options.
type BluemondayPurifier struct{}

func (BluemondayPurifier) Purify(content string, policy Policy) string {
	content = buildPolicy(policy).Sanitize(content)
	if !policy.boolOption("Attr.EnableID") {
		// The UGC base policy allows id attributes globally, so disabling
		// them means stripping them from the sanitized output.
		content = regexIDAttr.ReplaceAllString(content, "")
	}
	return content
}

// buildPolicy translates the opaque Policy options into a bluemonday policy.
// The base is the user-generated-content policy: authored rich content needs
// the standard formatting elements, links, images, and tables.
func buildPolicy(policy Policy) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Content is first-party: keep relative URLs and plain links.
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(false)

	// The style attribute survives purification untouched; the dedicated
	// inline-style pass applies the allow-set afterwards.
	p.AllowAttrs("style").Globally()

	if targets := policy.stringsOption("Attr.AllowedFrameTargets"); len(targets) > 0 {
		var quoted []string
		for _, target := range targets {
			quoted = append(quoted, regexp.QuoteMeta(target))
		}
		pattern := regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)$`)
		p.AllowAttrs("target").Matching(pattern).OnElements("a")
	}

	if policy.boolOption("Attr.EnableID") {
		// Tighten the id format over what the UGC base accepts.
		p.AllowAttrs("id").Matching(regexElementID).Globally()
	}

	if policy.boolOption("HTML.SafeIframe") {
		pattern := policy.stringOption("URI.SafeIframeRegexp")
		if pattern == "" {
			pattern = SafeIframePattern
		}
		// An uncompilable pattern fails closed: no iframe is allowed.
		if safeSrc, err := regexp.Compile(pattern); err == nil {
			p.AllowElements("iframe")
			p.AllowAttrs("src").Matching(safeSrc).OnElements("iframe")
			p.AllowAttrs("width", "height", "frameborder", "allow", "allowfullscreen").OnElements("iframe")
		}
	}

	if elements := policy.stringsOption("HTML.AllowedElements"); len(elements) > 0 {
		p.AllowElements(elements...)
	}
	if attrs := policy.stringsOption("HTML.AllowedAttributes"); len(attrs) > 0 {
		p.AllowAttrs(attrs...).Globally()
	}

	return p
}
