package field

import (
	"strings"
	"sync"

	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
	"github.com/julien-sobczak/the-fieldwriter/internal/resolve"
	"github.com/julien-sobczak/the-fieldwriter/pkg/text"
)

// Content is an immutable pair of raw content (reference tags intact, the
// persisted form) and parsed content (tags resolved, the display form).
// Parsing is lazy and happens at most once per value; no caching survives
// the value itself.
type Content struct {
	raw      string
	siteID   int
	resolver refs.Resolver

	parseOnce sync.Once
	parsed    string
}

// NewContent wraps a raw, tag-bearing value.
func NewContent(raw string, siteID int, resolver refs.Resolver) *Content {
	return &Content{
		raw:      raw,
		siteID:   siteID,
		resolver: resolver,
	}
}

// Raw returns the persisted form, with reference tags intact.
func (c *Content) Raw() string {
	return c.raw
}

// SiteID returns the site context the content belongs to, or 0.
func (c *Content) SiteID() int {
	return c.siteID
}

// Parsed returns the display form, with reference tags resolved.
func (c *Content) Parsed() string {
	c.parseOnce.Do(func() {
		if c.resolver == nil {
			c.parsed = c.raw
			return
		}
		c.parsed = resolve.Resolve(c.raw, c.siteID, c.resolver)
	})
	return c.parsed
}

// IsEmpty returns true when the parsed content contains nothing but whitespace.
func (c *Content) IsEmpty() bool {
	return text.IsBlank(c.Parsed())
}

func (c *Content) String() string {
	return c.Parsed()
}

// emptyValues are the authored markers meaning "no value at all".
var emptyValues = []string{"", "<p></p>", "<p><br></p>", "<p>&nbsp;</p>"}

// IsEmptyValue returns true when a trimmed authored value is one of the
// markers an editor leaves behind for an empty field.
func IsEmptyValue(value string) bool {
	trimmed := strings.TrimSpace(value)
	for _, empty := range emptyValues {
		if trimmed == empty {
			return true
		}
	}
	return false
}
