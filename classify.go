package sqlkw

// Classify collapses normalized keywords of one dialect into a KeywordSet.
//
// Keywords are grouped case-insensitively and the first-seen spelling is
// kept. When observations disagree, reserved wins over non-reserved, and the
// disagreement is returned as a ClassificationConflict (one per word, in
// first-seen order).
func Classify(dialect Dialect, keywords []Keyword) (*KeywordSet, []ClassificationConflict) {
	type tally struct {
		text        string
		reserved    int
		nonReserved int
	}

	var order []string
	tallies := make(map[string]*tally)
	for _, kw := range keywords {
		key := Key(kw.Text)
		t, ok := tallies[key]
		if !ok {
			t = &tally{text: kw.Text}
			tallies[key] = t
			order = append(order, key)
		}
		if kw.Reserved {
			t.reserved++
		} else {
			t.nonReserved++
		}
	}

	records := make([]Record, 0, len(order))
	var conflicts []ClassificationConflict
	for _, key := range order {
		t := tallies[key]
		if t.reserved > 0 && t.nonReserved > 0 {
			conflicts = append(conflicts, ClassificationConflict{
				Dialect:     dialect,
				Text:        t.text,
				Reserved:    t.reserved,
				NonReserved: t.nonReserved,
			})
		}
		records = append(records, Record{
			Text:     t.text,
			Dialect:  dialect,
			Reserved: t.reserved > 0,
		})
	}
	sortRecords(records)

	return newKeywordSet(dialect, records), conflicts
}
