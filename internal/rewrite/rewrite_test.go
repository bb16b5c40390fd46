package rewrite_test

import (
	"testing"

	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
	"github.com/julien-sobczak/the-fieldwriter/internal/rewrite"
	"github.com/stretchr/testify/assert"
)

// fakeResolver serves a fixed set of entries and a single asset.
type fakeResolver struct{}

func (fakeResolver) ResolveTag(tag string, siteID int) string {
	if tag == "{entry:5:url}" {
		return "/blog/hello"
	}
	if tag == "{entry:8:url}" {
		return "/docs/faq#a&b"
	}
	return tag
}

func (fakeResolver) FindContentByURI(uri string, siteID int) (refs.ContentRef, bool) {
	if uri == "hello" && siteID == 1 {
		return refs.ContentRef{ID: 5, Handle: "entry"}, true
	}
	if uri == "about" && siteID == 1 {
		// A content item whose type exposes no reference handle
		return refs.ContentRef{ID: 9}, true
	}
	return refs.ContentRef{}, false
}

func (fakeResolver) FindFileByLocation(volumeID int, filename, folderPath string) (refs.FileRef, bool) {
	if volumeID == 3 && filename == "report.pdf" && folderPath == "docs/" {
		return refs.FileRef{ID: 42}, true
	}
	return refs.FileRef{}, false
}

// fakeRegistry serves one site nested under another plus a volume.
type fakeRegistry struct{}

func (fakeRegistry) SiteBaseURLs() []refs.SiteBaseURL {
	return []refs.SiteBaseURL{
		{SiteID: 2, BaseURL: "https://example.com"}, // not slash-terminated on purpose
		{SiteID: 1, BaseURL: "https://example.com/blog/"},
		{SiteID: 4, BaseURL: ""}, // sites without URLs are skipped
		{SiteID: 1, BaseURL: "/blog/"},
	}
}

func (fakeRegistry) VolumeBaseURLs() []refs.VolumeBaseURL {
	return []refs.VolumeBaseURL{
		{VolumeID: 3, BaseURL: "https://files.example.com/"},
	}
}

func TestBuildEntries(t *testing.T) {
	entries := rewrite.BuildEntries(fakeRegistry{})

	// Empty base URLs are skipped, the rest is sorted longest-first
	assert.Equal(t, []rewrite.Entry{
		{BaseURL: "https://files.example.com/", Domain: rewrite.DomainVolume, ID: 3},
		{BaseURL: "https://example.com/blog/", Domain: rewrite.DomainSite, ID: 1},
		{BaseURL: "https://example.com/", Domain: rewrite.DomainSite, ID: 2},
		{BaseURL: "/blog/", Domain: rewrite.DomainSite, ID: 1},
	}, entries)
}

func TestRewrite(t *testing.T) {
	rw := &rewrite.Rewriter{
		Resolver: fakeResolver{},
		Registry: fakeRegistry{},
	}

	tests := []struct {
		name     string
		content  string // input
		expected string // output
	}{
		{
			name:     "Site URL",
			content:  `<a href="/blog/hello">x</a>`,
			expected: `<a href="{entry:5@1:url||/blog/hello}">x</a>`,
		},
		{
			name: "Longest prefix wins",
			// example.com/blog/ belongs to site 1, not to the shorter example.com entry
			content:  `<a href="https://example.com/blog/hello">x</a>`,
			expected: `<a href="{entry:5@1:url||https://example.com/blog/hello}">x</a>`,
		},
		{
			name:     "Volume file",
			content:  `<img src="https://files.example.com/docs/report.pdf">`,
			expected: `<img src="{asset:42:url||https://files.example.com/docs/report.pdf}">`,
		},
		{
			name:     "Query string is never rewritten",
			content:  `<a href="/blog/hello?draft=1">x</a>`,
			expected: `<a href="/blog/hello?draft=1">x</a>`,
		},
		{
			name:     "Page trigger stripped",
			content:  `<a href="/blog/hello/p2">x</a>`,
			expected: `<a href="{entry:5@1:url||/blog/hello/p2}">x</a>`,
		},
		{
			name:     "Unknown URI left unchanged",
			content:  `<a href="/blog/missing">x</a>`,
			expected: `<a href="/blog/missing">x</a>`,
		},
		{
			name:     "Content without a reference handle left unchanged",
			content:  `<a href="/blog/about">x</a>`,
			expected: `<a href="/blog/about">x</a>`,
		},
		{
			name:     "No matching base URL",
			content:  `<a href="https://other.example.org/page">x</a>`,
			expected: `<a href="https://other.example.org/page">x</a>`,
		},
		{
			name:     "Fragment locator",
			content:  `<a href="/blog/hello#entry:5:url">x</a>`,
			expected: `<a href="{entry:5:url||/blog/hello}">x</a>`,
		},
		{
			name:     "Fragment locator with site and transform",
			content:  `<img src="/files/a.png#asset:42@2:thumb">`,
			expected: `<img src="{asset:42@2:thumb||/files/a.png}">`,
		},
		{
			name: "Fragment locator with an entity-encoded hash",
			// The decoded hash is already part of the entry URL: it belongs
			// inside the fallback, not outside the tag
			content:  `<a href="/docs/faq#a&amp;b#entry:8:url">x</a>`,
			expected: `<a href="{entry:8:url||/docs/faq#a&amp;b}">x</a>`,
		},
		{
			name: "Fragment locator with a foreign hash",
			// The hash is not part of the entry URL: it stays outside the tag
			content:  `<a href="/blog/hello#section#entry:5:url">x</a>`,
			expected: `<a href="{entry:5:url||/blog/hello}#section">x</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rw.Rewrite(tt.content))
		})
	}
}
