package text

import (
	"regexp"
	"strings"
)

var multiSpaceRegex = regexp.MustCompile(`  +`)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// CollapseSpaces replaces runs of two or more spaces by a single one.
// Other whitespace characters (tabs, newlines) are left untouched.
func CollapseSpaces(text string) string {
	return multiSpaceRegex.ReplaceAllString(text, " ")
}

// EnsureTrailingSlash appends a final "/" when missing.
func EnsureTrailingSlash(text string) string {
	if strings.HasSuffix(text, "/") {
		return text
	}
	return text + "/"
}
