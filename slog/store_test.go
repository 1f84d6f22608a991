package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/sqlkw/mock"
	kwslog "github.com/fwojciec/sqlkw/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore(t *testing.T) {
	t.Parallel()

	t.Run("logs saved file at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.KeywordStore{
			SaveFn: func(context.Context, string, []byte) error { return nil },
		}

		err := kwslog.NewLoggingStore(inner, logger).Save(context.Background(), "all.txt", []byte("ABORT\n"))

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "name=all.txt")
		assert.Contains(t, buf.String(), "bytes=6")
	})

	t.Run("logs commit errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.KeywordStore{
			CommitFn: func() error { return errors.New("disk full") },
		}

		err := kwslog.NewLoggingStore(inner, logger).Commit()

		require.Error(t, err)
		assert.Contains(t, buf.String(), "msg=commit")
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})

	t.Run("logs abort", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		abortCalled := false
		inner := &mock.KeywordStore{
			AbortFn: func() error {
				abortCalled = true
				return nil
			},
		}

		err := kwslog.NewLoggingStore(inner, logger).Abort()

		require.NoError(t, err)
		assert.True(t, abortCalled)
		assert.Contains(t, buf.String(), "msg=abort")
	})
}
