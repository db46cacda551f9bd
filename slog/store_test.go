package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/coursegen"
	"github.com/fwojciec/coursegen/mock"
	cgslog "github.com/fwojciec/coursegen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFileStore_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("logs path and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileStore{
			ReadFileFn: func(ctx context.Context, path string) ([]byte, error) {
				return []byte("hello"), nil
			},
		}

		store := cgslog.NewLoggingFileStore(inner, logger)
		data, err := store.ReadFile(context.Background(), "index.html")

		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
		output := buf.String()
		assert.Contains(t, output, "read file")
		assert.Contains(t, output, "path=index.html")
		assert.Contains(t, output, "bytes=5")
		assert.Contains(t, output, "hash=26c7827d889f6da3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FileStore{
			ReadFileFn: func(ctx context.Context, path string) ([]byte, error) {
				return nil, coursegen.Errorf(coursegen.ENOTFOUND, "index.html not found")
			},
		}

		store := cgslog.NewLoggingFileStore(inner, logger)
		_, err := store.ReadFile(context.Background(), "index.html")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "read file")
		assert.Contains(t, output, "err=")
		assert.Contains(t, output, "not found")
		assert.NotContains(t, output, "hash=")
	})
}

func TestLoggingFileStore_WriteFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.FileStore{
		WriteFileFn: func(ctx context.Context, path string, data []byte) (bool, error) {
			return false, nil
		},
	}

	store := cgslog.NewLoggingFileStore(inner, logger)
	changed, err := store.WriteFile(context.Background(), "schedule.csv", []byte("a,b\n"))

	require.NoError(t, err)
	assert.False(t, changed)
	output := buf.String()
	assert.Contains(t, output, "write file")
	assert.Contains(t, output, "path=schedule.csv")
	assert.Contains(t, output, "bytes=4")
	assert.Contains(t, output, "hash=a2f9b9fd32136b6d")
	assert.Contains(t, output, "changed=false")
}
