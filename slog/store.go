package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sqlkw"
)

// Ensure LoggingStore implements sqlkw.KeywordStore.
var _ sqlkw.KeywordStore = (*LoggingStore)(nil)

// LoggingStore wraps a KeywordStore with logging.
type LoggingStore struct {
	next   sqlkw.KeywordStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next sqlkw.KeywordStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the file written.
func (s *LoggingStore) Save(ctx context.Context, name string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save",
			"name", name,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, name, data)
}

// Commit delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) Abort() (err error) {
	defer func() {
		s.logger.Warn("abort", "err", err)
	}()
	return s.next.Abort()
}
