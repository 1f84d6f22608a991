package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/sqlkw"
)

var _ sqlkw.Extractor = (*GenericExtractor)(nil)

var (
	// productionRe matches a BNF production head such as "<reserved word> ::=".
	productionRe = regexp.MustCompile(`<([^<>]+)>\s*::=`)

	blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)
)

// GenericExtractor reads the SQL standard's foundation grammar, which lists
// keywords as two BNF productions: <reserved word> and <non-reserved word>.
// Each production body is a "|"-separated word list.
type GenericExtractor struct{}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// Dialect returns sqlkw.DialectGeneric.
func (e *GenericExtractor) Dialect() sqlkw.Dialect {
	return sqlkw.DialectGeneric
}

// Extract returns the words of both productions in document order.
func (e *GenericExtractor) Extract(raw string) (*sqlkw.ExtractResult, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return nil, err
	}
	text := doc.Text()

	var keywords []sqlkw.Keyword
	matches := productionRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		name := strings.Join(strings.Fields(strings.ToLower(text[m[2]:m[3]])), " ")

		var reserved bool
		switch name {
		case "reserved word":
			reserved = true
		case "non-reserved word":
			reserved = false
		default:
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		for _, word := range productionWords(text[m[1]:end]) {
			keywords = append(keywords, sqlkw.Keyword{
				Text:     word,
				Reserved: reserved,
				Position: len(keywords),
			})
		}
	}

	return result(e.Dialect(), keywords, nil, "no <reserved word> or <non-reserved word> production found")
}

// productionWords splits a production body into its alternatives.
// The body ends at the first blank line; trailing prose after the last
// alternative is ignored.
func productionWords(body string) []string {
	body = strings.TrimLeft(body, " \t\r\n")
	if loc := blankLineRe.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}

	var words []string
	for _, alt := range strings.Split(body, "|") {
		fields := strings.Fields(alt)
		if len(fields) == 0 {
			continue
		}
		words = append(words, fields[0])
		if len(fields) > 1 {
			break
		}
	}
	return words
}
