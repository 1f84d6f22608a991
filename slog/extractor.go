package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sqlkw"
)

// Ensure LoggingExtractor implements sqlkw.Extractor.
var _ sqlkw.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   sqlkw.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sqlkw.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Dialect delegates to the wrapped extractor.
func (e *LoggingExtractor) Dialect() sqlkw.Dialect {
	return e.next.Dialect()
}

// Extract delegates to the wrapped extractor and logs the keyword count.
func (e *LoggingExtractor) Extract(raw string) (result *sqlkw.ExtractResult, err error) {
	defer func(begin time.Time) {
		var count, warnings int
		if result != nil {
			count = len(result.Keywords)
			warnings = len(result.Warnings)
		}
		e.logger.Info("extract",
			"dialect", e.next.Dialect(),
			"count", count,
			"warnings", warnings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(raw)
}

// Ensure LoggingRegistry implements sqlkw.ExtractorRegistry.
var _ sqlkw.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps every extractor resolved from a registry with a
// LoggingExtractor.
type LoggingRegistry struct {
	next   sqlkw.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next sqlkw.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get returns the wrapped registry's extractor decorated with logging.
func (r *LoggingRegistry) Get(dialect sqlkw.Dialect) sqlkw.Extractor {
	e := r.next.Get(dialect)
	if e == nil {
		r.logger.Warn("no extractor registered", "dialect", dialect)
		return nil
	}
	return NewLoggingExtractor(e, r.logger)
}
