package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpFromFileContent(t *testing.T) {
	path := SetUpFromFileContent(t, "settings.toml", `column_type = "text"`)

	bytes, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `column_type = "text"`, string(bytes))
}

func TestSetUpFromDirContent(t *testing.T) {
	dir := SetUpFromDirContent(t, map[string]string{
		"Default.json": `{}`,
		"Strict.json":  `{"Attr.EnableID": false}`,
	})

	require.FileExists(t, dir+"/Default.json")
	require.FileExists(t, dir+"/Strict.json")
}
