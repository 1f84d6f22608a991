package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sqlkw"
)

var _ sqlkw.Extractor = (*PostgresExtractor)(nil)

// PostgresExtractor reads the PostgreSQL "SQL Key Words" appendix: a table
// whose first column is the key word and whose second column is the
// PostgreSQL classification. Rows with an empty classification are words
// PostgreSQL does not treat specially and are skipped.
type PostgresExtractor struct{}

// NewPostgresExtractor creates a new PostgresExtractor.
func NewPostgresExtractor() *PostgresExtractor {
	return &PostgresExtractor{}
}

// Dialect returns sqlkw.DialectPostgreSQL.
func (e *PostgresExtractor) Dialect() sqlkw.Dialect {
	return sqlkw.DialectPostgreSQL
}

// Extract classifies each row by its own label, never by its position.
func (e *PostgresExtractor) Extract(raw string) (*sqlkw.ExtractResult, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return nil, err
	}

	tables := doc.Find("table").FilterFunction(func(_ int, t *goquery.Selection) bool {
		return strings.Contains(strings.ToLower(t.Find("th").Text()), "key word")
	})
	if tables.Length() == 0 {
		tables = doc.Find("table")
	}

	var keywords []sqlkw.Keyword
	var warnings []sqlkw.ExtractionWarning
	tables.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		word := cellText(cells.Eq(0))
		label := strings.ToLower(strings.Join(strings.Fields(cells.Eq(1).Text()), " "))
		if word == "" || label == "" {
			return
		}

		switch {
		case strings.HasPrefix(label, "non-reserved"):
			keywords = append(keywords, sqlkw.Keyword{Text: word, Reserved: false, Position: len(keywords)})
		case strings.HasPrefix(label, "reserved"):
			keywords = append(keywords, sqlkw.Keyword{Text: word, Reserved: true, Position: len(keywords)})
		default:
			warnings = append(warnings, sqlkw.ExtractionWarning{
				Dialect: e.Dialect(),
				Word:    word,
				Kind:    sqlkw.WarningUnknownLabel,
				Detail:  label,
			})
		}
	})

	return result(e.Dialect(), keywords, warnings, "no table row with a reserved or non-reserved label")
}
