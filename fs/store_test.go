package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/coursegen"
	"github.com/fwojciec/coursegen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic File Storage
// The store replaces files atomically and leaves unchanged files alone

func TestFileStore_WriteFileCreatesFile(t *testing.T) {
	t.Parallel()

	// Given a store rooted at a directory
	base := t.TempDir()
	store := fs.NewFileStore(base)

	// When I write a file in a missing subdirectory
	changed, err := store.WriteFile(context.Background(), filepath.Join("out", "schedule.csv"), []byte("a,b\n"))

	// Then the file is created
	require.NoError(t, err)
	assert.True(t, changed)
	data, err := os.ReadFile(filepath.Join(base, "out", "schedule.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}

func TestFileStore_WriteFileReplacesContent(t *testing.T) {
	t.Parallel()

	// Given an existing file
	base := t.TempDir()
	path := filepath.Join(base, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0600))
	store := fs.NewFileStore(base)

	// When I write new content
	changed, err := store.WriteFile(context.Background(), "index.html", []byte("new"))

	// Then the content is replaced and the mode kept
	require.NoError(t, err)
	assert.True(t, changed)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// And no temporary files are left behind
	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_WriteFileSkipsUnchangedContent(t *testing.T) {
	t.Parallel()

	// Given a file with known content and an old modification time
	base := t.TempDir()
	path := filepath.Join(base, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0644))
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, old, old))
	store := fs.NewFileStore(base)

	// When I write the same content
	changed, err := store.WriteFile(context.Background(), "index.html", []byte("same"))

	// Then nothing is written
	require.NoError(t, err)
	assert.False(t, changed)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old))
}

func TestFileStore_WriteFileRewritesSameLengthContent(t *testing.T) {
	t.Parallel()

	// Given a file
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "schedule.csv"), []byte("Jan 10,Lab\n"), 0644))
	store := fs.NewFileStore(base)

	// When I write different content of the same length
	changed, err := store.WriteFile(context.Background(), "schedule.csv", []byte("Jan 11,Lab\n"))

	// Then the file is replaced
	require.NoError(t, err)
	assert.True(t, changed)
	data, err := os.ReadFile(filepath.Join(base, "schedule.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Jan 11,Lab\n", string(data))
}

func TestFileStore_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads relative to the base directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "a.txt"), []byte("hello"), 0644))

		data, err := fs.NewFileStore(base).ReadFile(context.Background(), "a.txt")

		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("reads absolute paths as given", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

		data, err := fs.NewFileStore("/nonexistent").ReadFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("returns not found for missing files", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFileStore(t.TempDir()).ReadFile(context.Background(), "missing.csv")

		assert.Equal(t, coursegen.ENOTFOUND, coursegen.ErrorCode(err))
		assert.Equal(t, "missing.csv not found", coursegen.ErrorMessage(err))
	})

	t.Run("returns the context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewFileStore(t.TempDir()).ReadFile(ctx, "a.txt")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
