package field

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-fieldwriter/internal/sanitize"
	"github.com/pelletier/go-toml/v2"
)

// CleanupOptions select the post-purification passes a field runs.
type CleanupOptions struct {
	RemoveInlineStyles bool
	RemoveEmptyTags    bool
	RemoveNbsp         bool
}

// Definition is the capability surface a concrete field flavor overrides.
// The transformation pipeline takes it as injected configuration.
type Definition interface {
	// PurifierConfig names the policy configuration file, "" for the default.
	PurifierConfig() string
	// DefaultPurifierOptions is the policy used when no file exists.
	// Nil means the built-in default policy.
	DefaultPurifierOptions() sanitize.Policy
	// AllowedStyles lists the inline style properties kept when filtering.
	AllowedStyles() map[string]bool
	// ColumnType advises the host platform on the storage column to use.
	ColumnType() string
	// CleanupOptions selects the post-purification passes.
	CleanupOptions() CleanupOptions
}

// BaseDefinition carries the defaults every field flavor starts from.
type BaseDefinition struct{}

func (BaseDefinition) PurifierConfig() string { return "" }

func (BaseDefinition) DefaultPurifierOptions() sanitize.Policy { return nil }

func (BaseDefinition) AllowedStyles() map[string]bool { return nil }

func (BaseDefinition) ColumnType() string { return "text" }

func (BaseDefinition) CleanupOptions() CleanupOptions { return CleanupOptions{} }

// Settings mirror the per-field options the host platform persists.
// Note: Fields must be public for toml package to unmarshall
type Settings struct {
	PurifierConfigName string   `toml:"purifier_config"`
	Column             string   `toml:"column_type"`
	RemoveInlineStyles bool     `toml:"remove_inline_styles"`
	RemoveEmptyTags    bool     `toml:"remove_empty_tags"`
	RemoveNbsp         bool     `toml:"remove_nbsp"`
	Styles             []string `toml:"allowed_styles"`
	PageTrigger        string   `toml:"page_trigger"`
}

// LoadSettings reads field settings from a TOML file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read field settings %s: %w", path, err)
	}
	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid field settings %s: %w", path, err)
	}
	return &settings, nil
}

/* Settings implements Definition */

func (s *Settings) PurifierConfig() string {
	return s.PurifierConfigName
}

func (s *Settings) DefaultPurifierOptions() sanitize.Policy {
	return nil
}

func (s *Settings) AllowedStyles() map[string]bool {
	if len(s.Styles) == 0 {
		return nil
	}
	styles := make(map[string]bool, len(s.Styles))
	for _, style := range s.Styles {
		styles[style] = true
	}
	return styles
}

func (s *Settings) ColumnType() string {
	if s.Column == "" {
		return "text"
	}
	return s.Column
}

func (s *Settings) CleanupOptions() CleanupOptions {
	return CleanupOptions{
		RemoveInlineStyles: s.RemoveInlineStyles,
		RemoveEmptyTags:    s.RemoveEmptyTags,
		RemoveNbsp:         s.RemoveNbsp,
	}
}
