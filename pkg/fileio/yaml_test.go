package fileio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/aretw0/utilkit/pkg/fileio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	data := map[string]any{
		"name":  "utilkit",
		"count": 3,
		"tags":  []any{"a", "b"},
	}

	require.NoError(t, fileio.SaveYAML(path, data))

	loaded, err := fileio.LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestLoadYAML_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := fileio.LoadYAML(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("key: [unclosed\n"), 0644))
	_, err = fileio.LoadYAML(bad)
	assert.ErrorIs(t, err, domain.ErrMalformedData)
}

func TestTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.toml")
	data := map[string]any{
		"name":   "utilkit",
		"count":  int64(3),
		"ratio":  0.5,
		"server": map[string]any{"port": int64(8080)},
	}

	require.NoError(t, fileio.SaveTOML(path, data))

	loaded, err := fileio.LoadTOML(path)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestLoadTOML_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := fileio.LoadTOML(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("key = = value\n"), 0644))
	_, err = fileio.LoadTOML(bad)
	assert.ErrorIs(t, err, domain.ErrMalformedData)
}
