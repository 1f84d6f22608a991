package goquery

import (
	"sort"

	"github.com/fwojciec/sqlkw"
)

var _ sqlkw.ExtractorRegistry = (*Registry)(nil)

// Registry maps dialects to their extraction strategies.
type Registry struct {
	extractors map[sqlkw.Dialect]sqlkw.Extractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[sqlkw.Dialect]sqlkw.Extractor),
	}
}

// NewDefaultRegistry creates a Registry with an extractor for every dialect.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewGenericExtractor())
	r.Register(NewPostgresExtractor())
	r.Register(NewMySQLExtractor())
	r.Register(NewSQLiteExtractor())
	return r
}

// Get returns the extractor for a dialect.
// Returns nil if no extractor is registered for the dialect.
func (r *Registry) Get(dialect sqlkw.Dialect) sqlkw.Extractor {
	return r.extractors[dialect]
}

// Register adds an extractor under its own dialect.
// If an extractor is already registered for the dialect, it is replaced.
func (r *Registry) Register(e sqlkw.Extractor) {
	r.extractors[e.Dialect()] = e
}

// List returns all registered dialects, sorted.
func (r *Registry) List() []sqlkw.Dialect {
	dialects := make([]sqlkw.Dialect, 0, len(r.extractors))
	for d := range r.extractors {
		dialects = append(dialects, d)
	}
	sort.Slice(dialects, func(i, j int) bool { return dialects[i] < dialects[j] })
	return dialects
}
