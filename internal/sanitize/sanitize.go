// Package sanitize implements the save-time sanitization stage: reference-tag
// resolution, SVG protection, HTML purification, and the optional inline-style,
// empty-tag, and non-breaking-space post-passes.
package sanitize

import (
	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
	"github.com/julien-sobczak/the-fieldwriter/internal/resolve"
	"github.com/julien-sobczak/the-fieldwriter/internal/svg"
)

// Options control the optional post-passes of a sanitization run.
type Options struct {
	// Policy drives the purifier. Nil means the built-in default policy.
	Policy Policy
	// RemoveInlineStyles strips <font> tags and filters style attributes,
	// keeping only the properties present in AllowedStyles.
	RemoveInlineStyles bool
	AllowedStyles      map[string]bool
	// RemoveEmptyTags removes empty element pairs (single pass).
	RemoveEmptyTags bool
	// RemoveNbsp replaces non-breaking spaces with regular spaces.
	RemoveNbsp bool
}

// Sanitizer runs the sanitization stage. The zero value uses the default
// purifier and the default SVG sanitizer, and skips reference-tag resolution.
type Sanitizer struct {
	// Purifier cleans the HTML once SVGs are protected. Nil means the
	// bluemonday-backed default.
	Purifier Purifier
	// SVGSanitizer cleans every inline SVG block. Nil means svg.Scrub.
	SVGSanitizer svg.Sanitizer
	// Resolver resolves reference tags embedded in attribute values before
	// purification, so the purifier never HTML-encodes their braces.
	// Nil skips this step.
	Resolver refs.Resolver
	// SiteID is the site context passed to the Resolver.
	SiteID int
}

// Sanitize cleans untrusted HTML. Stages run in a fixed order: resolve
// embedded reference tags, protect SVGs, purify, restore SVGs, then the
// optional post-passes. Only an SVG sanitization failure aborts the run.
func (s *Sanitizer) Sanitize(content string, opts Options) (string, error) {
	if s.Resolver != nil {
		content = resolve.Resolve(content, s.SiteID, s.Resolver)
	}

	content, tokens, err := svg.Tokenize(content, s.svgSanitizer())
	if err != nil {
		return "", err
	}

	policy := opts.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}
	content = s.purifier().Purify(content, policy)

	content = svg.Restore(content, tokens)

	if opts.RemoveInlineStyles {
		content = RemoveInlineStyles(content, opts.AllowedStyles)
	}
	if opts.RemoveEmptyTags {
		content = RemoveEmptyTags(content)
	}
	if opts.RemoveNbsp {
		content = RemoveNbsp(content)
	}

	return content, nil
}

func (s *Sanitizer) purifier() Purifier {
	if s.Purifier != nil {
		return s.Purifier
	}
	return BluemondayPurifier{}
}

func (s *Sanitizer) svgSanitizer() svg.Sanitizer {
	if s.SVGSanitizer != nil {
		return s.SVGSanitizer
	}
	return svg.Scrub
}
