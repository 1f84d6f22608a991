package sqlkw

import "encoding/json"

// SourceStatus is the outcome of processing one source.
type SourceStatus string

// SourceStatus constants.
const (
	StatusOK          SourceStatus = "ok"
	StatusFetchFailed SourceStatus = "fetch-failed"
	StatusEmpty       SourceStatus = "empty"
)

// SourceReport summarizes what a run did with one source.
type SourceReport struct {
	Source Source       `json:"source"`
	Status SourceStatus `json:"status"`
	Error  string       `json:"error,omitempty"`

	// ContentHash is the xxhash64 of the fetched document, so two reports
	// show at a glance whether a vendor page changed between runs.
	ContentHash string `json:"contentHash,omitempty"`

	// Extracted counts keywords the extractor returned; Kept counts those
	// that survived normalization.
	Extracted int `json:"extracted"`
	Kept      int `json:"kept"`

	ExtractionWarnings    []ExtractionWarning    `json:"extractionWarnings,omitempty"`
	NormalizationWarnings []NormalizationWarning `json:"normalizationWarnings,omitempty"`
}

// DialectReport summarizes the classified keyword set of one dialect.
type DialectReport struct {
	Dialect     Dialect                  `json:"dialect"`
	Keywords    int                      `json:"keywords"`
	Reserved    int                      `json:"reserved"`
	NonReserved int                      `json:"nonReserved"`
	Conflicts   []ClassificationConflict `json:"conflicts,omitempty"`
}

// Report summarizes a pipeline run. It holds no timestamps or run IDs, so
// identical inputs produce identical reports.
type Report struct {
	Sources  []SourceReport  `json:"sources"`
	Dialects []DialectReport `json:"dialects"`
	Merged   int             `json:"merged"`
	Files    []string        `json:"files"`
}

// Failed returns the reports of sources that did not yield any keyword.
func (r *Report) Failed() []SourceReport {
	var out []SourceReport
	for _, s := range r.Sources {
		if s.Status != StatusOK {
			out = append(out, s)
		}
	}
	return out
}

// Incomplete returns the dialects whose published keywords may be missing
// entries: a source of the dialect failed, or the dialect has no keywords.
func (r *Report) Incomplete() []Dialect {
	bad := make(map[Dialect]bool)
	for _, s := range r.Sources {
		if s.Status != StatusOK {
			bad[s.Source.Dialect] = true
		}
	}
	have := make(map[Dialect]bool)
	for _, d := range r.Dialects {
		if d.Keywords > 0 {
			have[d.Dialect] = true
		}
	}

	var out []Dialect
	for _, d := range Dialects() {
		if bad[d] || !have[d] {
			out = append(out, d)
		}
	}
	return out
}

// Conflicts returns the number of classification conflicts across all dialects.
func (r *Report) Conflicts() int {
	var n int
	for _, d := range r.Dialects {
		n += len(d.Conflicts)
	}
	return n
}

// MarshalIndent renders the report as indented JSON with a trailing newline.
func (r *Report) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
