package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sqlkw"
)

var _ sqlkw.Extractor = (*MySQLExtractor)(nil)

var (
	reservedMarkerRe = regexp.MustCompile(`\(R\)`)
	addedInRe        = regexp.MustCompile(`(?i)\badded in\b`)
	becameNonResRe   = regexp.MustCompile(`(?i)\bbecame non-?reserved in\b`)
	removedInRe      = regexp.MustCompile(`(?i)\bremoved in\b`)

	// historySectionRe matches the headings of the "New Keywords" and
	// "Removed Keywords" appendices, which repeat words without their
	// current status.
	historySectionRe = regexp.MustCompile(`(?i)\b(new|removed) keywords\b`)
)

// MySQLExtractor reads the MySQL "Keywords and Reserved Words" page: a flat
// list where reserved words carry an "(R)" marker and entries may carry
// version history such as "added in 8.0.14" or "became nonreserved in 8.0.12".
type MySQLExtractor struct{}

// NewMySQLExtractor creates a new MySQLExtractor.
func NewMySQLExtractor() *MySQLExtractor {
	return &MySQLExtractor{}
}

// Dialect returns sqlkw.DialectMySQL.
func (e *MySQLExtractor) Dialect() sqlkw.Dialect {
	return sqlkw.DialectMySQL
}

// Extract keeps only the current status of each entry. Entries removed from
// the server are skipped, and so are the lists under the "New Keywords" and
// "Removed Keywords" headings. An entry annotated both "added in" and "became
// nonreserved in" has no unambiguous current status: it is kept with the
// status its "(R)" marker states and reported as a warning.
func (e *MySQLExtractor) Extract(raw string) (*sqlkw.ExtractResult, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return nil, err
	}

	var keywords []sqlkw.Keyword
	var warnings []sqlkw.ExtractionWarning
	inItemizedList := doc.Find(".itemizedlist li").Length() > 0
	historySection := false
	doc.Find("h1, h2, h3, h4, h5, h6, li").Each(func(_ int, item *goquery.Selection) {
		if goquery.NodeName(item) != "li" {
			historySection = historySectionRe.MatchString(item.Text())
			return
		}
		if historySection {
			return
		}
		if inItemizedList && item.Closest(".itemizedlist").Length() == 0 {
			return
		}

		code := item.Find("code").First()
		if code.Length() == 0 {
			return
		}
		word := strings.TrimSpace(code.Text())
		if word == "" {
			return
		}

		notes := strings.Join(strings.Fields(item.Text()), " ")
		notes = strings.TrimSpace(strings.TrimPrefix(notes, word))

		if removedInRe.MatchString(notes) {
			return
		}
		if addedInRe.MatchString(notes) && becameNonResRe.MatchString(notes) {
			warnings = append(warnings, sqlkw.ExtractionWarning{
				Dialect: e.Dialect(),
				Word:    word,
				Kind:    sqlkw.WarningAmbiguousHistory,
				Detail:  notes,
			})
		}

		keywords = append(keywords, sqlkw.Keyword{
			Text:     word,
			Reserved: reservedMarkerRe.MatchString(notes),
			Position: len(keywords),
		})
	})

	return result(e.Dialect(), keywords, warnings, "no list item with a code element")
}
