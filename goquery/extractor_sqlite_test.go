package goquery_test

import (
	"testing"

	"github.com/fwojciec/sqlkw"
	"github.com/fwojciec/sqlkw/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure SQLiteExtractor implements sqlkw.Extractor at compile time.
var _ sqlkw.Extractor = (*goquery.SQLiteExtractor)(nil)

func TestSQLiteExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("classifies every keyword as reserved", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div class="menu"><ul><li>About</li><li>Documentation</li></ul></div>
<div class="columns" style="columns:15em auto;">
<ul>
<li>ABORT</li>
<li>ACTION</li>
<li>ADD</li>
</ul>
</div>
</body>
</html>`

		result, err := goquery.NewSQLiteExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.Keywords, 3)
		assert.Equal(t, sqlkw.Keyword{Text: "ABORT", Reserved: true, Position: 0}, result.Keywords[0])
		assert.Equal(t, sqlkw.Keyword{Text: "ACTION", Reserved: true, Position: 1}, result.Keywords[1])
		assert.Equal(t, sqlkw.Keyword{Text: "ADD", Reserved: true, Position: 2}, result.Keywords[2])
		assert.Empty(t, result.Warnings)
	})

	t.Run("falls back to list items without columns container", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSQLiteExtractor().Extract(`<ul><li>ABORT</li><li> </li></ul>`)

		require.NoError(t, err)
		require.Len(t, result.Keywords, 1)
		assert.Equal(t, "ABORT", result.Keywords[0].Text)
	})

	t.Run("fallback skips navigation links and warns", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<ul class="menu"><li><a href="/">Home</a></li><li><a href="/about.html">About</a></li><li><a href="/download.html">Download</a></li></ul>
<h2>List Of SQL Keywords</h2>
<ul><li>ABORT</li><li>ACTION</li></ul>
</body></html>`

		result, err := goquery.NewSQLiteExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.Keywords, 2)
		assert.Equal(t, "ABORT", result.Keywords[0].Text)
		assert.Equal(t, "ACTION", result.Keywords[1].Text)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, sqlkw.WarningFallbackLayout, result.Warnings[0].Kind)
		assert.Equal(t, sqlkw.DialectSQLite, result.Warnings[0].Dialect)
	})

	t.Run("returns extraction error for empty list", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSQLiteExtractor().Extract(`<html><body><p>No keywords</p></body></html>`)

		require.Error(t, err)
		assert.Equal(t, sqlkw.EEXTRACT, sqlkw.ErrorCode(err))
	})
}
