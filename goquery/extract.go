// Package goquery implements sqlkw.Extractor strategies for the vendor
// keyword documentation pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sqlkw"
	"golang.org/x/net/html"
)

// parseDocument parses raw markup into a goquery document.
// The HTML5 parser accepts fragments and recovers from malformed markup,
// so an error here means the input could not be read at all.
func parseDocument(raw string) (*goquery.Document, error) {
	node, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, sqlkw.Errorf(sqlkw.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(node), nil
}

// cellText returns the text of a table cell, preferring its code element.
func cellText(cell *goquery.Selection) string {
	if code := cell.Find("code").First(); code.Length() > 0 {
		return strings.TrimSpace(code.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// result builds the extraction result, failing with an ExtractionError when
// nothing matched.
func result(dialect sqlkw.Dialect, keywords []sqlkw.Keyword, warnings []sqlkw.ExtractionWarning, reason string) (*sqlkw.ExtractResult, error) {
	if len(keywords) == 0 {
		return nil, &sqlkw.ExtractionError{Dialect: dialect, Reason: reason}
	}
	return &sqlkw.ExtractResult{Keywords: keywords, Warnings: warnings}, nil
}
