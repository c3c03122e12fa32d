package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failingWrite(*os.File, []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestOSDir_WriteFile(t *testing.T) {
	dir := t.TempDir()
	d, err := OpenDir(dir)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.WriteFile("a.txt", []byte("first")))
	require.NoError(t, d.WriteFile("a.txt", []byte("2")))

	b, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "2", string(b), "existing file is truncated")
}

func TestOSDir_FailedWriteRemovesNewFile(t *testing.T) {
	dir := t.TempDir()
	d, err := OpenDir(dir)
	require.NoError(t, err)
	defer d.Close()
	d.write = failingWrite

	assert.Error(t, d.WriteFile("fresh.txt", []byte("x")))
	assert.NoFileExists(t, filepath.Join(dir, "fresh.txt"))
}

func TestOSDir_FailedWriteKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "earlier_run.txt")
	require.NoError(t, os.WriteFile(existing, []byte("from before"), 0o644))

	d, err := OpenDir(dir)
	require.NoError(t, err)
	defer d.Close()
	d.write = failingWrite

	assert.Error(t, d.WriteFile("earlier_run.txt", []byte("x")))
	assert.FileExists(t, existing)
}
