package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.out")
	require.NoError(t, os.WriteFile(path, []byte("SAT\n1 -2 0\n"), 0644))
	output, err := NewModelFileAdapter().ReadModel(path)
	require.NoError(t, err)
	assert.Equal(t, "SAT\n1 -2 0\n", output)
}

func TestReadModelMissing(t *testing.T) {
	_, err := NewModelFileAdapter().ReadModel(filepath.Join(t.TempDir(), "nope.out"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestReadModelEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.out")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))
	_, err := NewModelFileAdapter().ReadModel(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
