package sqlkw

import (
	"sort"
	"strings"
)

// FormatLines renders keywords in the persisted list format: one keyword per
// line, byte-wise ascending, no blank lines, no duplicate lines, terminated
// by a trailing newline. The input slice is not modified.
// An empty list renders as an empty file.
func FormatLines(words []string) []byte {
	lines := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		lines = append(lines, w)
	}
	sort.Strings(lines)

	var b strings.Builder
	for i, line := range lines {
		if i > 0 && line == lines[i-1] {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// ParseLines splits a persisted list back into keywords.
func ParseLines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
