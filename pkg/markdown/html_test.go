package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-fieldwriter/pkg/markdown"
	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	actual := markdown.ToHTML("Hello **World**")
	assert.Equal(t, "<p>Hello <strong>World</strong></p>", actual)
}

func TestToHTMLLinks(t *testing.T) {
	actual := markdown.ToHTML("[Blog](/blog/hello)")
	assert.Equal(t, `<p><a href="/blog/hello">Blog</a></p>`, actual)
}
