package sanitize

// Policy is the option map driving the purifier. The engine treats it as
// opaque key/value pairs; only the purifier implementation interprets keys.
//
// Recognised keys follow the host platform convention:
//
//	Attr.AllowedFrameTargets  []string  allowed <a target> values
//	Attr.EnableID             bool      keep element id attributes
//	HTML.SafeIframe           bool      allow iframes with a safe src
//	URI.SafeIframeRegexp      string    pattern a safe iframe src must match
//	HTML.AllowedElements      []string  extra elements to allow
//	HTML.AllowedAttributes    []string  extra attributes to allow on any element
type Policy map[string]any

// SafeIframePattern matches the YouTube/Vimeo embed URLs allowed by default.
const SafeIframePattern = `^(https?:)?//(www\.youtube(-nocookie)?\.com/embed/|player\.vimeo\.com/video/)`

// DefaultPolicy returns the built-in policy used when no configuration file
// exists: _blank frame targets, element IDs, and safe YouTube/Vimeo iframes.
func DefaultPolicy() Policy {
	return Policy{
		"Attr.AllowedFrameTargets": []string{"_blank"},
		"Attr.EnableID":            true,
		"HTML.SafeIframe":          true,
		"URI.SafeIframeRegexp":     SafeIframePattern,
	}
}

// boolOption reads a boolean option, tolerating absent keys.
func (p Policy) boolOption(key string) bool {
	value, ok := p[key]
	if !ok {
		return false
	}
	b, ok := value.(bool)
	return ok && b
}

// stringOption reads a string option, tolerating absent keys.
func (p Policy) stringOption(key string) string {
	value, ok := p[key]
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

// stringsOption reads a string-list option. Lists decoded from JSON or YAML
// arrive as []any and are converted element by element.
func (p Policy) stringsOption(key string) []string {
	value, ok := p[key]
	if !ok {
		return nil
	}
	switch list := value.(type) {
	case []string:
		return list
	case []any:
		var result []string
		for _, item := range list {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}
