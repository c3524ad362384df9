package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "db.yml")

	require.NoError(t, WriteFileAtomic(target, []byte("a: 1\n"), 0o644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "db.yml")

	require.NoError(t, WriteFileAtomic(target, []byte("a: 1\n"), 0o644))
	require.NoError(t, WriteFileAtomic(target, []byte("a: 2\n"), 0o644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "a: 2\n", string(data))
}

func TestWriteFileAtomicNoStaleTempFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "db.yml")

	require.NoError(t, WriteFileAtomic(target, []byte("a: 1\n"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}
