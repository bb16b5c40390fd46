// Package field assembles the transformation stages into the save and
// display pipelines of a rich-content field, and provides the content value
// wrapping their results.
package field

import (
	"strings"

	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
	"github.com/julien-sobczak/the-fieldwriter/internal/resolve"
	"github.com/julien-sobczak/the-fieldwriter/internal/rewrite"
	"github.com/julien-sobczak/the-fieldwriter/internal/sanitize"
)

// Pipeline wires the stages with explicit collaborators. Every invocation is
// independent and stateless: concurrent pipelines never interfere.
type Pipeline struct {
	// Definition carries the field capabilities. Nil means BaseDefinition.
	Definition Definition
	Resolver   refs.Resolver
	Registry   refs.Registry
	// ConfigDir is the directory holding purifier policy files.
	// Empty disables file lookup; the definition defaults apply.
	ConfigDir string
	// PageTrigger is passed to the URL rewriter.
	PageTrigger string
	// Logger traces stage transitions. Nil means the silent default.
	Logger *Logger
}

// Save turns authored HTML into the raw form to persist:
// sanitization first, then URL-to-reference-tag rewriting.
// Only an SVG sanitization failure aborts a save.
func (p *Pipeline) Save(content string, siteID int) (string, error) {
	definition := p.definition()

	policy, err := p.policy(definition)
	if err != nil {
		return "", err
	}

	cleanup := definition.CleanupOptions()
	sanitizer := &sanitize.Sanitizer{
		Resolver: p.Resolver,
		SiteID:   siteID,
	}
	p.logger().Debugf("sanitizing %d bytes of authored content", len(content))
	content, err = sanitizer.Sanitize(content, sanitize.Options{
		Policy:             policy,
		RemoveInlineStyles: cleanup.RemoveInlineStyles,
		AllowedStyles:      definition.AllowedStyles(),
		RemoveEmptyTags:    cleanup.RemoveEmptyTags,
		RemoveNbsp:         cleanup.RemoveNbsp,
	})
	if err != nil {
		return "", err
	}

	if p.Resolver != nil && p.Registry != nil {
		p.logger().Debugf("rewriting URLs into reference tags")
		rewriter := &rewrite.Rewriter{
			Resolver:    p.Resolver,
			Registry:    p.Registry,
			PageTrigger: p.PageTrigger,
		}
		content = rewriter.Rewrite(content)
	}

	return content, nil
}

// Display turns persisted raw content into renderable HTML by resolving
// every reference tag.
func (p *Pipeline) Display(raw string, siteID int) string {
	if p.Resolver == nil {
		return raw
	}
	return resolve.Resolve(raw, siteID, p.Resolver)
}

// Normalize wraps an authored value into a content value, or nil when the
// value is one of the empty markers: no value is stored at all.
func (p *Pipeline) Normalize(value string, siteID int) *Content {
	trimmed := strings.TrimSpace(value)
	if IsEmptyValue(trimmed) {
		return nil
	}
	return NewContent(trimmed, siteID, p.Resolver)
}

// policy resolves the sanitization policy: the named configuration file
// first, then the definition defaults, then the built-in default inside the
// sanitizer. A missing file is never an error.
func (p *Pipeline) policy(definition Definition) (sanitize.Policy, error) {
	if p.ConfigDir != "" {
		policy, err := sanitize.LoadPolicy(p.ConfigDir, definition.PurifierConfig())
		if err != nil {
			return nil, err
		}
		if policy != nil {
			return policy, nil
		}
	}
	return definition.DefaultPurifierOptions(), nil
}

func (p *Pipeline) definition() Definition {
	if p.Definition != nil {
		return p.Definition
	}
	return BaseDefinition{}
}

func (p *Pipeline) logger() *Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return CurrentLogger()
}
