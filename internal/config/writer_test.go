package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Backend = BackendWebFonts
	cfg.WebFonts.APIKey = "abc"
	cfg.Catalog.Limit = 12
	require.NoError(t, WriteFile(cfg, path, false))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteFile_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`backend = "catalog"`), 0o644))

	err := WriteFile(Default(), path, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, WriteFile(Default(), path, true))
}

func TestEncode_UsesConfigKeys(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)

	text := string(data)
	assert.Regexp(t, `backend = ['"]catalog['"]`, text)
	assert.Contains(t, text, "[webfonts]")
	assert.Contains(t, text, "api_key")
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Aurane configuration", doc["title"])
	assert.Contains(t, string(data), "api_key")
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteSchemaFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.schema.json"), path)
	assert.FileExists(t, path)
}
