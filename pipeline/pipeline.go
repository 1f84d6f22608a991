// Package pipeline orchestrates a keyword extraction run: it fetches every
// source concurrently, then extracts, normalizes, classifies, merges and
// publishes the keyword snapshot in a single deterministic pass.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/sqlkw"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchTimeout bounds each source's fetch, including retries.
const DefaultFetchTimeout = 30 * time.Second

// DefaultConcurrency is the number of sources fetched at the same time.
const DefaultConcurrency = 4

// Pipeline runs the extraction pipeline over a set of sources.
type Pipeline struct {
	Fetcher     sqlkw.Fetcher
	Extractors  sqlkw.ExtractorRegistry
	Store       sqlkw.KeywordStore
	RateLimiter sqlkw.DomainLimiter
	Logger      *slog.Logger

	// FetchTimeout bounds each source independently. A source that times
	// out fails alone; its siblings keep running.
	FetchTimeout time.Duration
	Concurrency  int
	RetryDelays  []time.Duration
}

// fetched is the immutable outcome of fetching one source.
type fetched struct {
	body string
	err  error
}

// Run fetches, extracts and publishes keywords for sources.
//
// Failures local to one source are recorded in the report and never abort
// the run. The returned error is non-nil only when the snapshot could not be
// published: a store failure, or no source producing any keyword (the
// previous snapshot is kept in that case).
func (p *Pipeline) Run(ctx context.Context, sources []sqlkw.Source) (*sqlkw.Report, error) {
	for i := range sources {
		if err := sources[i].Validate(); err != nil {
			return nil, err
		}
	}

	logger := p.logger().With("run_id", uuid.NewString())
	logger.Info("run started", "sources", len(sources))

	results := p.fetchAll(ctx, sources, logger)

	// Barrier passed: everything below is a single-threaded reduction.
	report := &sqlkw.Report{}
	byDialect := make(map[sqlkw.Dialect][]sqlkw.Keyword)
	for i, src := range sources {
		sr, keywords := p.process(src, results[i], logger)
		report.Sources = append(report.Sources, sr)
		byDialect[src.Dialect] = append(byDialect[src.Dialect], keywords...)
	}

	var sets []*sqlkw.KeywordSet
	for _, d := range sqlkw.Dialects() {
		keywords, ok := byDialect[d]
		if !ok {
			continue
		}
		set, conflicts := sqlkw.Classify(d, keywords)
		for _, c := range conflicts {
			logger.Warn("classification conflict",
				"dialect", c.Dialect,
				"keyword", c.Text,
				"reserved_rows", c.Reserved,
				"nonreserved_rows", c.NonReserved,
			)
		}
		report.Dialects = append(report.Dialects, sqlkw.DialectReport{
			Dialect:     d,
			Keywords:    set.Len(),
			Reserved:    len(set.Reserved()),
			NonReserved: len(set.NonReserved()),
			Conflicts:   conflicts,
		})
		if set.Len() > 0 {
			sets = append(sets, set)
		}
	}

	index := sqlkw.Merge(sets...)
	report.Merged = index.Len()

	for _, d := range report.Incomplete() {
		logger.Warn("dialect incomplete", "dialect", d)
	}

	if index.Len() == 0 {
		return report, sqlkw.Errorf(sqlkw.ENOTFOUND, "no source produced keywords")
	}

	if err := p.publish(ctx, report, sets, index); err != nil {
		if abortErr := p.Store.Abort(); abortErr != nil {
			logger.Error("abort failed", "err", abortErr)
		}
		return report, fmt.Errorf("publish: %w", err)
	}

	logger.Info("run finished",
		"merged", report.Merged,
		"conflicts", report.Conflicts(),
		"failed", len(report.Failed()),
	)
	return report, nil
}

// fetchAll fetches every source concurrently. Each goroutine writes only its
// own slot, and no goroutine returns an error, so a failing source never
// cancels its siblings.
func (p *Pipeline) fetchAll(ctx context.Context, sources []sqlkw.Source, logger *slog.Logger) []fetched {
	results := make([]fetched, len(sources))

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, src := range sources {
		g.Go(func() error {
			body, err := p.fetch(ctx, src, logger)
			if err != nil {
				err = &sqlkw.FetchError{Source: src.Name, Err: err}
			}
			results[i] = fetched{body: body, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (p *Pipeline) fetch(ctx context.Context, src sqlkw.Source, logger *slog.Logger) (string, error) {
	timeout := p.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	fetchFn := func(ctx context.Context, u string) (string, error) {
		if p.RateLimiter != nil {
			if err := p.RateLimiter.Wait(ctx, host(u)); err != nil {
				return "", err
			}
		}
		return p.Fetcher.Fetch(ctx, u)
	}
	logFn := func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...), "source", src.Name)
	}

	return FetchWithRetryDelays(ctx, src.URL, fetchFn, logFn, delays)
}

// process extracts and normalizes one fetched source.
func (p *Pipeline) process(src sqlkw.Source, res fetched, logger *slog.Logger) (sqlkw.SourceReport, []sqlkw.Keyword) {
	sr := sqlkw.SourceReport{Source: src}

	if res.err != nil {
		logger.Error("source failed", "source", src.Name, "err", res.err)
		sr.Status = sqlkw.StatusFetchFailed
		sr.Error = res.err.Error()
		return sr, nil
	}
	sr.ContentHash = ComputeHash(res.body)

	var extractor sqlkw.Extractor
	if p.Extractors != nil {
		extractor = p.Extractors.Get(src.Dialect)
	}
	if extractor == nil {
		err := &sqlkw.ExtractionError{Dialect: src.Dialect, Reason: "no extractor registered"}
		logger.Error("source produced no keywords", "source", src.Name, "err", err)
		sr.Status = sqlkw.StatusEmpty
		sr.Error = err.Error()
		return sr, nil
	}

	result, err := extractor.Extract(res.body)
	if err != nil {
		var extractErr *sqlkw.ExtractionError
		if !errors.As(err, &extractErr) {
			err = &sqlkw.ExtractionError{Dialect: src.Dialect, Reason: err.Error()}
		}
		logger.Error("source produced no keywords", "source", src.Name, "err", err)
		sr.Status = sqlkw.StatusEmpty
		sr.Error = err.Error()
		return sr, nil
	}

	sr.Extracted = len(result.Keywords)
	sr.ExtractionWarnings = result.Warnings
	for _, w := range result.Warnings {
		logger.Warn("extraction warning", "source", src.Name, "warning", w.String())
	}

	keywords, warnings := sqlkw.Normalize(src.Dialect, result.Keywords)
	sr.NormalizationWarnings = warnings
	for _, w := range warnings {
		logger.Warn("dropped token", "source", src.Name, "warning", w.String())
	}

	sr.Kept = len(keywords)
	if len(keywords) == 0 {
		err := &sqlkw.ExtractionError{Dialect: src.Dialect, Reason: "every extracted token was malformed"}
		logger.Error("source produced no keywords", "source", src.Name, "err", err)
		sr.Status = sqlkw.StatusEmpty
		sr.Error = err.Error()
		return sr, nil
	}

	sr.Status = sqlkw.StatusOK
	return sr, keywords
}

// publish saves every snapshot file and commits them.
func (p *Pipeline) publish(ctx context.Context, report *sqlkw.Report, sets []*sqlkw.KeywordSet, index *sqlkw.MergedIndex) error {
	type file struct {
		name  string
		words []string
	}

	var files []file
	for _, set := range sets {
		d := set.Dialect()
		files = append(files, file{sqlkw.FileName(d), set.Words()})
		if words := set.Reserved(); len(words) > 0 {
			files = append(files, file{sqlkw.ReservedFileName(d), words})
		}
		if words := set.NonReserved(); len(words) > 0 {
			files = append(files, file{sqlkw.NonReservedFileName(d), words})
		}
	}
	files = append(files, file{sqlkw.MergedFileName, index.Words()})

	for _, f := range files {
		report.Files = append(report.Files, f.name)
	}
	report.Files = append(report.Files, sqlkw.MergedIndexFileName)

	for _, f := range files {
		if err := p.Store.Save(ctx, f.name, sqlkw.FormatLines(f.words)); err != nil {
			return fmt.Errorf("save %s: %w", f.name, err)
		}
	}

	attribution, err := index.MarshalIndent()
	if err != nil {
		return err
	}
	if err := p.Store.Save(ctx, sqlkw.MergedIndexFileName, attribution); err != nil {
		return fmt.Errorf("save %s: %w", sqlkw.MergedIndexFileName, err)
	}

	data, err := report.MarshalIndent()
	if err != nil {
		return err
	}
	if err := p.Store.Save(ctx, sqlkw.ReportFileName, data); err != nil {
		return fmt.Errorf("save %s: %w", sqlkw.ReportFileName, err)
	}

	return p.Store.Commit()
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// host returns the host of rawURL, or rawURL itself if it cannot be parsed.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
