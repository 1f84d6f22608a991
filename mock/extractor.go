package mock

import "github.com/fwojciec/sqlkw"

var (
	_ sqlkw.Extractor         = (*Extractor)(nil)
	_ sqlkw.ExtractorRegistry = (*ExtractorRegistry)(nil)
)

// Extractor is a mock implementation of sqlkw.Extractor.
type Extractor struct {
	DialectFn func() sqlkw.Dialect
	ExtractFn func(raw string) (*sqlkw.ExtractResult, error)
}

func (e *Extractor) Dialect() sqlkw.Dialect {
	return e.DialectFn()
}

func (e *Extractor) Extract(raw string) (*sqlkw.ExtractResult, error) {
	return e.ExtractFn(raw)
}

// ExtractorRegistry is a mock implementation of sqlkw.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn func(dialect sqlkw.Dialect) sqlkw.Extractor
}

func (r *ExtractorRegistry) Get(dialect sqlkw.Dialect) sqlkw.Extractor {
	return r.GetFn(dialect)
}
