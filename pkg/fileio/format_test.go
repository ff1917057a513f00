package fileio_test

import (
	"path/filepath"
	"testing"

	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/aretw0/utilkit/pkg/fileio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	tests := map[string]fileio.Format{
		"a.json":     fileio.FormatJSON,
		"a.JSON":     fileio.FormatJSON,
		"dir/a.yml":  fileio.FormatYAML,
		"a.yaml":     fileio.FormatYAML,
		"a.toml":     fileio.FormatTOML,
		"report.csv": fileio.FormatCSV,
	}
	for path, expected := range tests {
		got, err := fileio.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, got, path)
	}

	_, err := fileio.FormatOf("notes.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestConvert_JSONToYAMLToJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.json")
	mid := filepath.Join(dir, "mid.yaml")
	dst := filepath.Join(dir, "out.json")

	data := map[string]any{"name": "x", "list": []any{"a", "b"}}
	require.NoError(t, fileio.SaveJSON(src, data))

	require.NoError(t, fileio.Convert(src, mid))
	require.NoError(t, fileio.Convert(mid, dst))

	loaded, err := fileio.LoadJSON(dst)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestConvert_JSONToCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "rows.json")
	dst := filepath.Join(dir, "rows.csv")

	require.NoError(t, fileio.SaveJSON(src, []any{
		map[string]any{"id": 1, "name": "a", "n": 25000000},
		map[string]any{"id": 1234567, "name": nil, "n": 0.5},
	}))
	require.NoError(t, fileio.Convert(src, dst))

	table, err := fileio.LoadCSV(dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "n", "name"}, table.Header)
	assert.Equal(t, [][]string{{"1", "25000000", "a"}, {"1234567", "0.5", ""}}, table.Rows)

	back, err := fileio.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"id": "1", "n": "25000000", "name": "a"},
		map[string]any{"id": "1234567", "n": "0.5", "name": ""},
	}, back)
}

func TestSave_CSVFormatsFloatsPlainly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floats.csv")
	require.NoError(t, fileio.Save(path, []any{map[string]any{"big": 2.5e7, "small": 1e-7}}))

	table, err := fileio.LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"25000000", "0.0000001"}}, table.Rows)
}

func TestSave_CSVRejectsNested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested.csv")

	err := fileio.Save(path, []any{map[string]any{"child": map[string]any{"a": 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = fileio.Save(path, map[string]any{"not": "a list"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
