// Package fs provides file-based storage for course site sources.
package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/coursegen"
)

// Ensure FileStore implements coursegen.FileStore at compile time.
var _ coursegen.FileStore = (*FileStore)(nil)

// FileStore implements coursegen.FileStore with atomic update semantics.
// Data is written to a temporary file next to the target, then renamed over
// it, so readers never observe a partially written file.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a new FileStore. Relative paths are resolved against
// baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

func (s *FileStore) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

func (s *FileStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.resolve(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, coursegen.Errorf(coursegen.ENOTFOUND, "%s not found", path)
	} else if err != nil {
		return nil, coursegen.Errorf(coursegen.EINTERNAL, "reading %s: %v", path, err)
	}
	return data, nil
}

func (s *FileStore) WriteFile(ctx context.Context, path string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fullPath := s.resolve(path)
	mode := os.FileMode(0644)

	// Skip the write when the content is unchanged
	if existing, err := os.ReadFile(fullPath); err == nil {
		if bytes.Equal(existing, data) {
			return false, nil
		}
		if info, err := os.Stat(fullPath); err == nil {
			mode = info.Mode().Perm()
		}
	}

	if err := writeAtomic(fullPath, data, mode); err != nil {
		return false, coursegen.Errorf(coursegen.EINTERNAL, "writing %s: %v", path, err)
	}
	return true, nil
}

func writeAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomically replace the target
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
