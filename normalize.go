package sqlkw

import (
	"regexp"
	"strings"
)

var (
	// footnoteRe matches trailing footnote markers such as "[a]" or "[12]"
	// left attached to a word by naive text extraction. Brackets inside a
	// word are not footnotes and make the token malformed.
	footnoteRe = regexp.MustCompile(`(\[[^\]]*\])+$`)

	wordRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// residue is markup punctuation that may surround an extracted word.
const residue = " \t\r\n\u00a0\u200b*\u2020\u2021\"'`.,;:"

// Normalize cleans extracted keywords for one dialect. Tokens that are empty
// or not made of word characters after cleanup are dropped and reported as
// warnings. The order of surviving keywords is preserved.
func Normalize(dialect Dialect, keywords []Keyword) ([]Keyword, []NormalizationWarning) {
	out := make([]Keyword, 0, len(keywords))
	var warnings []NormalizationWarning
	for _, kw := range keywords {
		text := strings.Trim(kw.Text, residue)
		text = footnoteRe.ReplaceAllString(text, "")
		text = strings.Trim(text, residue)

		if text == "" {
			warnings = append(warnings, NormalizationWarning{
				Dialect: dialect,
				Token:   kw.Text,
				Reason:  "empty after cleanup",
			})
			continue
		}
		if !wordRe.MatchString(text) {
			warnings = append(warnings, NormalizationWarning{
				Dialect: dialect,
				Token:   kw.Text,
				Reason:  "not a word",
			})
			continue
		}

		kw.Text = text
		out = append(out, kw)
	}
	return out, warnings
}
