package field_test

import (
	"testing"

	"github.com/julien-sobczak/the-fieldwriter/internal/field"
	"github.com/julien-sobczak/the-fieldwriter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	path := testutil.SetUpFromFileContent(t, "field.toml", `
purifier_config = "Strict"
column_type = "mediumtext"
remove_inline_styles = true
remove_empty_tags = true
remove_nbsp = false
allowed_styles = ["color", "text-align"]
page_trigger = "page"
`)

	settings, err := field.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "Strict", settings.PurifierConfig())
	assert.Equal(t, "mediumtext", settings.ColumnType())
	assert.Equal(t, map[string]bool{"color": true, "text-align": true}, settings.AllowedStyles())
	assert.Equal(t, field.CleanupOptions{
		RemoveInlineStyles: true,
		RemoveEmptyTags:    true,
		RemoveNbsp:         false,
	}, settings.CleanupOptions())
	assert.Equal(t, "page", settings.PageTrigger)
}

func TestLoadSettingsDefaults(t *testing.T) {
	path := testutil.SetUpFromFileContent(t, "field.toml", ``)

	settings, err := field.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "", settings.PurifierConfig())
	assert.Equal(t, "text", settings.ColumnType())
	assert.Nil(t, settings.AllowedStyles())
	assert.Equal(t, field.CleanupOptions{}, settings.CleanupOptions())
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := field.LoadSettings("/does/not/exist.toml")
	require.Error(t, err)
}

func TestLoadSettingsInvalidFile(t *testing.T) {
	path := testutil.SetUpFromFileContent(t, "field.toml", `column_type = [not toml`)

	_, err := field.LoadSettings(path)
	require.Error(t, err)
}

func TestBaseDefinition(t *testing.T) {
	definition := field.BaseDefinition{}

	assert.Equal(t, "", definition.PurifierConfig())
	assert.Nil(t, definition.DefaultPurifierOptions())
	assert.Nil(t, definition.AllowedStyles())
	assert.Equal(t, "text", definition.ColumnType())
	assert.Equal(t, field.CleanupOptions{}, definition.CleanupOptions())
}
