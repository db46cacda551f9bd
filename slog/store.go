// Package slog decorates coursegen services with structured logging.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/coursegen"
)

// contentHash returns the xxhash digest of data, so log lines show which
// version of a file was read or written.
func contentHash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Ensure LoggingFileStore implements coursegen.FileStore.
var _ coursegen.FileStore = (*LoggingFileStore)(nil)

// LoggingFileStore wraps a FileStore with logging of every read and write.
type LoggingFileStore struct {
	next   coursegen.FileStore
	logger *slog.Logger
}

// NewLoggingFileStore creates a new LoggingFileStore.
func NewLoggingFileStore(next coursegen.FileStore, logger *slog.Logger) *LoggingFileStore {
	return &LoggingFileStore{next: next, logger: logger}
}

// ReadFile delegates to the wrapped store and logs the operation.
func (s *LoggingFileStore) ReadFile(ctx context.Context, path string) (data []byte, err error) {
	defer func(begin time.Time) {
		args := []any{"path", path, "bytes", len(data)}
		if err == nil {
			args = append(args, "hash", contentHash(data))
		}
		args = append(args, "duration", time.Since(begin), "err", err)
		s.logger.Info("read file", args...)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}

// WriteFile delegates to the wrapped store and logs the operation.
func (s *LoggingFileStore) WriteFile(ctx context.Context, path string, data []byte) (changed bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("write file",
			"path", path,
			"bytes", len(data),
			"hash", contentHash(data),
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, data)
}
