package coursegen

import "context"

// FileStore reads and writes whole files.
type FileStore interface {
	// ReadFile returns the file's contents.
	// Returns ENOTFOUND if the file does not exist.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the file's contents atomically. It reports false
	// without touching the file when it already holds exactly data.
	WriteFile(ctx context.Context, path string, data []byte) (changed bool, err error)
}
