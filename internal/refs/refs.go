// Package refs implements the reference-tag grammar used to embed portable
// pointers to content items and files inside stored rich content.
//
// The textual form is type:id[@siteId][:transform], embedded in HTML as
// {type:id[@siteId][:transform]} or {type:id[@siteId][:transform]||fallbackUrl}.
package refs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Handle is the identifier syntax shared with the host platform: alphanumeric
// plus underscore, starting with a letter.
const Handle = `[a-zA-Z]\w*`

// Pattern matches a reference without capturing groups, for embedding in
// larger expressions. Type names may be namespaced with a backslash separator
// (compound type names).
const Pattern = Handle + `(?:\\` + Handle + `)*:\d+(?:@\d+)?(?::(?:transform:)?` + Handle + `(?:-\w+)*)?`

// Regex to parse a reference into its segments.
// The transform segment accepts an optional "transform:" prefix on input.
var regexRef = regexp.MustCompile(`^(` + Handle + `(?:\\` + Handle + `)*):(\d+)(?:@(\d+))?(?::(?:transform:)?(` + Handle + `(?:-\w+)*))?$`)

// Regex to parse the embedded {ref} / {ref||fallback} encoding.
var regexTag = regexp.MustCompile(`^\{(` + Pattern + `)(?:\|\|([^}]+))?\}$`)

// Ref is a symbolic pointer to a content item or file.
type Ref struct {
	Type        string
	ID          int
	SiteID      int    // 0 when the reference is not bound to a site
	Transform   string // optional named variant of the resolved value
	FallbackURL string // optional literal URL used when the reference is unresolvable
}

// ParseRef parses the textual form type:id[@siteId][:transform].
func ParseRef(text string) (Ref, error) {
	match := regexRef.FindStringSubmatch(text)
	if match == nil {
		return Ref{}, fmt.Errorf("invalid reference %q", text)
	}
	id, err := strconv.Atoi(match[2])
	if err != nil {
		return Ref{}, fmt.Errorf("invalid reference id in %q: %w", text, err)
	}
	ref := Ref{
		Type:      match[1],
		ID:        id,
		Transform: match[4],
	}
	if match[3] != "" {
		siteID, err := strconv.Atoi(match[3])
		if err != nil {
			return Ref{}, fmt.Errorf("invalid site id in %q: %w", text, err)
		}
		ref.SiteID = siteID
	}
	return ref, nil
}

// ParseTag parses the embedded form {ref} or {ref||fallbackUrl}.
func ParseTag(text string) (Ref, error) {
	match := regexTag.FindStringSubmatch(text)
	if match == nil {
		return Ref{}, fmt.Errorf("invalid reference tag %q", text)
	}
	ref, err := ParseRef(match[1])
	if err != nil {
		return Ref{}, err
	}
	ref.FallbackURL = match[2]
	return ref, nil
}

// String returns the canonical textual form, without the optional
// "transform:" prefix. ParseRef(r.String()) == r for every canonical r.
func (r Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Type)
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(r.ID))
	if r.SiteID > 0 {
		sb.WriteString("@")
		sb.WriteString(strconv.Itoa(r.SiteID))
	}
	if r.Transform != "" {
		sb.WriteString(":")
		sb.WriteString(r.Transform)
	}
	return sb.String()
}

// Tag returns the embedded form, with the fallback URL when present.
func (r Ref) Tag() string {
	if r.FallbackURL != "" {
		return "{" + r.String() + "||" + r.FallbackURL + "}"
	}
	return "{" + r.String() + "}"
}
