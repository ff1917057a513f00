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

func TestCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	table := fileio.Table{
		Header: []string{"name", "age", "quote"},
		Rows: [][]string{
			{"Ada", "36", "numbers, not just quantities"},
			{"Alan", "41", `He said "hello"`},
		},
	}

	require.NoError(t, fileio.SaveCSV(path, table))

	loaded, err := fileio.LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
}

func TestCSV_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, fileio.SaveCSV(path, fileio.Table{Header: []string{"a", "b"}}))

	loaded, err := fileio.LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, loaded.Header)
	assert.Empty(t, loaded.Rows)
	assert.NotNil(t, loaded.Rows)
}

func TestSaveCSV_Invalid(t *testing.T) {
	dir := t.TempDir()

	err := fileio.SaveCSV(filepath.Join(dir, "a.csv"), fileio.Table{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = fileio.SaveCSV(filepath.Join(dir, "b.csv"), fileio.Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"only-one"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, statErr := os.Stat(filepath.Join(dir, "b.csv"))
	assert.True(t, os.IsNotExist(statErr), "invalid tables must not create files")
}

func TestLoadCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := fileio.LoadCSV(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = fileio.LoadCSV(empty)
	assert.ErrorIs(t, err, domain.ErrMalformedData)

	ragged := filepath.Join(dir, "ragged.csv")
	require.NoError(t, os.WriteFile(ragged, []byte("a,b\n1,2\n3\n"), 0644))
	_, err = fileio.LoadCSV(ragged)
	assert.ErrorIs(t, err, domain.ErrMalformedData)

	quotes := filepath.Join(dir, "quotes.csv")
	require.NoError(t, os.WriteFile(quotes, []byte("a\n\"open\n"), 0644))
	_, err = fileio.LoadCSV(quotes)
	assert.ErrorIs(t, err, domain.ErrMalformedData)
}

func TestTable_Records(t *testing.T) {
	table := fileio.Table{
		Header: []string{"id", "name"},
		Rows:   [][]string{{"1", "a"}, {"2", "b"}},
	}

	assert.Equal(t, []map[string]string{
		{"id": "1", "name": "a"},
		{"id": "2", "name": "b"},
	}, table.Records())
}

func TestTableFromRecords(t *testing.T) {
	table := fileio.TableFromRecords([]map[string]string{
		{"name": "a", "id": "1"},
		{"id": "2", "extra": "x"},
	})

	assert.Equal(t, []string{"extra", "id", "name"}, table.Header)
	assert.Equal(t, [][]string{{"", "1", "a"}, {"x", "2", ""}}, table.Rows)
}

type person struct {
	Name   string  `csv:"name"`
	Age    int     `csv:"age"`
	Admin  bool    `csv:"admin"`
	Rating float64 `csv:"rating"`
}

func TestDecodeRecords(t *testing.T) {
	table := fileio.Table{
		Header: []string{"name", "age", "admin", "rating"},
		Rows: [][]string{
			{"Ada", "36", "true", "4.5"},
			{"Alan", "", "false", "3"},
		},
	}

	people, err := fileio.DecodeRecords[person](table)
	require.NoError(t, err)
	assert.Equal(t, []person{
		{Name: "Ada", Age: 36, Admin: true, Rating: 4.5},
		{Name: "Alan", Age: 0, Admin: false, Rating: 3},
	}, people)
}

func TestDecodeRecords_BadCell(t *testing.T) {
	table := fileio.Table{
		Header: []string{"name", "age"},
		Rows:   [][]string{{"Ada", "thirty"}},
	}

	_, err := fileio.DecodeRecords[person](table)
	assert.ErrorIs(t, err, domain.ErrMalformedData)
}

func TestLoadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,age\nAda,36\n"), 0644))

	people, err := fileio.LoadRecords[person](path)
	require.NoError(t, err)
	assert.Equal(t, []person{{Name: "Ada", Age: 36}}, people)
}
