package sqlkw_test

import (
	"testing"

	"github.com/fwojciec/sqlkw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	pg, _ := sqlkw.Classify(sqlkw.DialectPostgreSQL, []sqlkw.Keyword{
		{Text: "SELECT", Reserved: true},
		{Text: "COUNT", Reserved: false},
	})
	lite, _ := sqlkw.Classify(sqlkw.DialectSQLite, []sqlkw.Keyword{
		{Text: "ABORT", Reserved: true},
		{Text: "Select", Reserved: true},
	})

	t.Run("unions all dialects with attribution", func(t *testing.T) {
		t.Parallel()

		idx := sqlkw.Merge(pg, lite)

		assert.Equal(t, []string{"ABORT", "COUNT", "SELECT"}, idx.Words())

		abort, ok := idx.Lookup("abort")
		require.True(t, ok)
		assert.Equal(t, []sqlkw.Dialect{sqlkw.DialectSQLite}, abort.Dialects())

		sel, ok := idx.Lookup("SELECT")
		require.True(t, ok)
		assert.Equal(t, []sqlkw.Observation{
			{Dialect: sqlkw.DialectPostgreSQL, Reserved: true},
			{Dialect: sqlkw.DialectSQLite, Reserved: true},
		}, sel.Observations)

		count, ok := idx.Lookup("count")
		require.True(t, ok)
		assert.False(t, count.ReservedIn(sqlkw.DialectPostgreSQL))
	})

	t.Run("is independent of argument order", func(t *testing.T) {
		t.Parallel()

		a := sqlkw.Merge(pg, lite)
		b := sqlkw.Merge(lite, pg)

		assert.Equal(t, a.Entries(), b.Entries())
	})

	t.Run("does not mutate input sets", func(t *testing.T) {
		t.Parallel()

		before := lite.Records()
		_ = sqlkw.Merge(pg, lite)

		assert.Equal(t, before, lite.Records())
		assert.Equal(t, []string{"ABORT", "Select"}, lite.Words())
	})

	t.Run("ignores nil sets", func(t *testing.T) {
		t.Parallel()

		idx := sqlkw.Merge(nil, pg)

		assert.Equal(t, 2, idx.Len())
	})
}
