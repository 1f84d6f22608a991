package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sqlkw"
)

var _ sqlkw.Extractor = (*SQLiteExtractor)(nil)

// SQLiteExtractor reads the SQLite "SQL Keywords" page. SQLite publishes a
// single list without a reserved/non-reserved distinction, so every word is
// classified as reserved.
type SQLiteExtractor struct{}

// NewSQLiteExtractor creates a new SQLiteExtractor.
func NewSQLiteExtractor() *SQLiteExtractor {
	return &SQLiteExtractor{}
}

// Dialect returns sqlkw.DialectSQLite.
func (e *SQLiteExtractor) Dialect() sqlkw.Dialect {
	return sqlkw.DialectSQLite
}

// Extract returns every keyword list entry as reserved. Without the
// ".columns" container it falls back to list items that hold plain text, so
// navigation links are not read as keywords, and reports the fallback as a
// warning.
func (e *SQLiteExtractor) Extract(raw string) (*sqlkw.ExtractResult, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return nil, err
	}

	items := doc.Find(".columns li")
	var warnings []sqlkw.ExtractionWarning
	if items.Length() == 0 {
		items = doc.Find("li").FilterFunction(func(_ int, item *goquery.Selection) bool {
			return item.Children().Length() == 0
		})
		if items.Length() > 0 {
			warnings = append(warnings, sqlkw.ExtractionWarning{
				Dialect: e.Dialect(),
				Kind:    sqlkw.WarningFallbackLayout,
				Detail:  "no .columns keyword list; read plain list items",
			})
		}
	}

	var keywords []sqlkw.Keyword
	items.Each(func(_ int, item *goquery.Selection) {
		word := strings.TrimSpace(item.Text())
		if word == "" {
			return
		}
		keywords = append(keywords, sqlkw.Keyword{Text: word, Reserved: true, Position: len(keywords)})
	})

	return result(e.Dialect(), keywords, warnings, "no keyword list items")
}
