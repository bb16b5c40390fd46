package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	regexScript        = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	regexForeignObject = regexp.MustCompile(`(?is)<foreignobject\b.*?</foreignobject\s*>`)
	regexEventAttr     = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)
	regexScriptURL     = regexp.MustCompile(`(?i)\s+(?:href|xlink:href)\s*=\s*(?:"\s*javascript:[^"]*"|'\s*javascript:[^']*')`)
)

// Scrub is the default SVG sanitizer.
// It rejects markup that is not well-formed XML and strips scripting vectors:
// <script> and <foreignObject> blocks, event-handler attributes, and
// javascript: URLs. A host platform can substitute its own Sanitizer.
func Scrub(markup string) (string, error) {
	if err := checkWellFormed(markup); err != nil {
		return "", fmt.Errorf("malformed svg markup: %w", err)
	}
	markup = regexScript.ReplaceAllString(markup, "")
	markup = regexForeignObject.ReplaceAllString(markup, "")
	markup = regexEventAttr.ReplaceAllString(markup, "")
	markup = regexScriptURL.ReplaceAllString(markup, "")
	return markup, nil
}

func checkWellFormed(markup string) error {
	decoder := xml.NewDecoder(strings.NewReader(markup))
	decoder.Entity = xml.HTMLEntity
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
