package sqlkw

import (
	"sort"
	"strings"
)

// Keyword is a single observation produced by an Extractor.
type Keyword struct {
	Text     string
	Reserved bool

	// Position is the zero-based ordinal of the entry in the source
	// document. Kept for debugging only.
	Position int
}

// Record is a classified keyword belonging to one dialect.
// Records are unique per (case-insensitive Text, Dialect).
type Record struct {
	Text     string  `json:"text"`
	Dialect  Dialect `json:"dialect"`
	Reserved bool    `json:"reserved"`
}

// Key returns the case-insensitive comparison key for keyword text.
func Key(text string) string {
	return strings.ToUpper(text)
}

// KeywordSet is the classified, de-duplicated keyword set of one dialect.
// It is built by Classify and cannot be modified afterwards; every accessor
// returns a copy.
type KeywordSet struct {
	dialect Dialect
	records []Record
	index   map[string]int
}

func newKeywordSet(dialect Dialect, records []Record) *KeywordSet {
	s := &KeywordSet{
		dialect: dialect,
		records: records,
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		s.index[Key(r.Text)] = i
	}
	return s
}

// Dialect returns the dialect the set belongs to.
func (s *KeywordSet) Dialect() Dialect {
	return s.dialect
}

// Len returns the number of keywords in the set.
func (s *KeywordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns the records sorted by text.
func (s *KeywordSet) Records() []Record {
	if s == nil {
		return nil
	}
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Lookup returns the record for text, compared case-insensitively.
func (s *KeywordSet) Lookup(text string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	i, ok := s.index[Key(text)]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Words returns every keyword in ascending ordinal order.
func (s *KeywordSet) Words() []string {
	return s.words(func(Record) bool { return true })
}

// Reserved returns the reserved keywords in ascending ordinal order.
func (s *KeywordSet) Reserved() []string {
	return s.words(func(r Record) bool { return r.Reserved })
}

// NonReserved returns the non-reserved keywords in ascending ordinal order.
func (s *KeywordSet) NonReserved() []string {
	return s.words(func(r Record) bool { return !r.Reserved })
}

func (s *KeywordSet) words(keep func(Record) bool) []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r.Text)
		}
	}
	return out
}

// sortRecords orders records by text using a byte-wise comparison so the
// result does not depend on locale.
func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Text < records[j].Text
	})
}
