package sqlkw

// ExtractResult holds the keywords found in one source document.
type ExtractResult struct {
	// Keywords are in document order.
	Keywords []Keyword

	// Warnings flag entries whose markup could not be read unambiguously.
	Warnings []ExtractionWarning
}

// Extractor reads one source's markup convention.
// Each dialect has its own Extractor because vendors mark reserved and
// non-reserved words differently.
type Extractor interface {
	// Dialect returns the dialect whose documentation the extractor reads.
	Dialect() Dialect

	// Extract parses raw markup and returns the keywords it contains.
	// Returns *ExtractionError if no keyword pattern matched.
	Extract(raw string) (*ExtractResult, error)
}

// ExtractorRegistry resolves the Extractor for a dialect.
type ExtractorRegistry interface {
	// Get returns the extractor registered for the dialect, or nil.
	Get(dialect Dialect) Extractor
}
