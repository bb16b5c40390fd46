package field_test

import (
	"testing"

	"github.com/julien-sobczak/the-fieldwriter/internal/field"
	"github.com/julien-sobczak/the-fieldwriter/internal/fixture"
	"github.com/stretchr/testify/assert"
)

func demoStore() *fixture.Store {
	return fixture.New(fixture.File{
		Sites: []fixture.Site{
			{ID: 1, BaseURL: "https://example.com/"},
		},
		Volumes: []fixture.Volume{
			{ID: 3, BaseURL: "https://cdn.example.com/assets/"},
		},
		Entries: []fixture.Entry{
			{ID: 5, Handle: "entry", SiteID: 1, URI: "blog/hello", URL: "https://example.com/blog/hello"},
		},
		Assets: []fixture.Asset{
			{ID: 42, VolumeID: 3, Filename: "report.pdf", FolderPath: "docs/", URL: "https://cdn.example.com/assets/docs/report.pdf"},
		},
	})
}

func TestContentParsed(t *testing.T) {
	raw := `<p><a href="{entry:5@1:url||/blog/hello}">hello</a></p>`
	content := field.NewContent(raw, 1, demoStore())

	assert.Equal(t, raw, content.Raw())
	assert.Equal(t, 1, content.SiteID())
	assert.Equal(t, `<p><a href="https://example.com/blog/hello#entry:5@1:url">hello</a></p>`, content.Parsed())
	// String() renders the display form
	assert.Equal(t, content.Parsed(), content.String())
}

func TestContentParsedWithoutResolver(t *testing.T) {
	raw := `<p><a href="{entry:5:url}">hello</a></p>`
	content := field.NewContent(raw, 1, nil)

	assert.Equal(t, raw, content.Parsed())
}

func TestContentIsEmpty(t *testing.T) {
	assert.True(t, field.NewContent("   \n\t", 1, nil).IsEmpty())
	assert.False(t, field.NewContent("<p>x</p>", 1, nil).IsEmpty())
}

func TestIsEmptyValue(t *testing.T) {
	tests := []struct {
		name     string
		value    string // input
		expected bool   // output
	}{
		{"Empty string", "", true},
		{"Whitespace only", "  \n", true},
		{"Empty paragraph", "<p></p>", true},
		{"Paragraph with a line break", " <p><br></p> ", true},
		{"Paragraph with a non-breaking space", "<p>&nbsp;</p>", true},
		{"Actual content", "<p>x</p>", false},
		{"Bare text", "hello", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, field.IsEmptyValue(tt.value))
		})
	}
}
