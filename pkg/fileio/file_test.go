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

func TestCreateDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fileio.CreateDirectory(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// A second call on an existing directory is a no-op.
	assert.NoError(t, fileio.CreateDirectory(path))
}

func TestCreateDirectory_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := fileio.CreateDirectory(path)
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestCreateDirectory_EmptyPath(t *testing.T) {
	assert.ErrorIs(t, fileio.CreateDirectory(""), domain.ErrInvalidArgument)
}
