package sqlkw

import (
	"encoding/json"
	"sort"
)

// Observation is one dialect's classification of a merged keyword.
type Observation struct {
	Dialect  Dialect `json:"dialect"`
	Reserved bool    `json:"reserved"`
}

// MergedEntry is a keyword of the merged index with every dialect that
// knows it.
type MergedEntry struct {
	Text         string        `json:"text"`
	Observations []Observation `json:"observations"`
}

// Dialects returns the dialects that observed the keyword.
func (e MergedEntry) Dialects() []Dialect {
	out := make([]Dialect, len(e.Observations))
	for i, o := range e.Observations {
		out[i] = o.Dialect
	}
	return out
}

// ReservedIn reports whether dialect d classifies the keyword as reserved.
func (e MergedEntry) ReservedIn(d Dialect) bool {
	for _, o := range e.Observations {
		if o.Dialect == d {
			return o.Reserved
		}
	}
	return false
}

// MergedIndex is the union of all dialects' keywords, used by a
// dialect-agnostic fallback lexer.
type MergedIndex struct {
	entries []MergedEntry
	index   map[string]int
}

// Merge folds per-dialect sets into a MergedIndex. The result does not depend
// on argument order and no dialect takes precedence: where dialects spell a
// keyword with different casing, the ordinally smallest spelling is used.
// The input sets are only read. Nil sets are ignored.
func Merge(sets ...*KeywordSet) *MergedIndex {
	type acc struct {
		text string
		obs  []Observation
	}

	byKey := make(map[string]*acc)
	for _, s := range sets {
		if s == nil {
			continue
		}
		for _, r := range s.records {
			key := Key(r.Text)
			a, ok := byKey[key]
			if !ok {
				a = &acc{text: r.Text}
				byKey[key] = a
			} else if r.Text < a.text {
				a.text = r.Text
			}
			a.obs = append(a.obs, Observation{Dialect: r.Dialect, Reserved: r.Reserved})
		}
	}

	entries := make([]MergedEntry, 0, len(byKey))
	for _, a := range byKey {
		sortObservations(a.obs)
		entries = append(entries, MergedEntry{Text: a.text, Observations: a.obs})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Text < entries[j].Text
	})

	idx := &MergedIndex{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		idx.index[Key(e.Text)] = i
	}
	return idx
}

// Len returns the number of distinct keywords.
func (m *MergedIndex) Len() int {
	return len(m.entries)
}

// Words returns every keyword in ascending ordinal order.
func (m *MergedIndex) Words() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Text
	}
	return out
}

// Entries returns a copy of every entry in ascending ordinal order.
func (m *MergedIndex) Entries() []MergedEntry {
	out := make([]MergedEntry, len(m.entries))
	for i, e := range m.entries {
		obs := make([]Observation, len(e.Observations))
		copy(obs, e.Observations)
		out[i] = MergedEntry{Text: e.Text, Observations: obs}
	}
	return out
}

// MarshalIndent renders every entry with its dialect attribution as indented
// JSON with a trailing newline.
func (m *MergedIndex) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(m.Entries(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Lookup returns the entry for text, compared case-insensitively.
func (m *MergedIndex) Lookup(text string) (MergedEntry, bool) {
	i, ok := m.index[Key(text)]
	if !ok {
		return MergedEntry{}, false
	}
	e := m.entries[i]
	obs := make([]Observation, len(e.Observations))
	copy(obs, e.Observations)
	return MergedEntry{Text: e.Text, Observations: obs}, true
}

func sortObservations(obs []Observation) {
	rank := make(map[Dialect]int)
	for i, d := range Dialects() {
		rank[d] = i
	}
	sort.Slice(obs, func(i, j int) bool {
		return rank[obs[i].Dialect] < rank[obs[j].Dialect]
	})
}
