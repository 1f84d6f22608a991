package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sqlkw"
	main "github.com/fwojciec/sqlkw/cmd/sqlkw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docs = map[string]string{
	"/generic": `<html><body><pre>
&lt;non-reserved word&gt;    ::=
         A | ABSOLUTE

&lt;reserved word&gt;    ::=
         ALL | SELECT
</pre></body></html>`,
	"/postgresql": `<html><body><table>
<tr><th>Key Word</th><th>PostgreSQL</th></tr>
<tr><td><code>ABSOLUTE</code></td><td>non-reserved</td></tr>
<tr><td><code>SELECT</code></td><td>reserved</td></tr>
</table></body></html>`,
	"/mysql": `<html><body><div class="itemizedlist"><ul>
<li><p><code>ACCESSIBLE</code> (R)</p></li>
<li><p><code>ACCOUNT</code></p></li>
</ul></div></body></html>`,
	"/sqlite": `<html><body><div class="columns"><ul>
<li>ABORT</li>
<li>SELECT</li>
</ul></div></body></html>`,
}

// newDocServer serves the fixture documents, answering 404 for paths in missing.
func newDocServer(t *testing.T, missing ...string) *httptest.Server {
	t.Helper()
	gone := make(map[string]bool)
	for _, p := range missing {
		gone[p] = true
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := docs[r.URL.Path]
		if !ok || gone[r.URL.Path] {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// writeConfig points every source at srv and disables retries.
func writeConfig(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	content := fmt.Sprintf(`rate: 1000
retries: 0
sources:
  generic: %[1]s/generic
  postgresql: %[1]s/postgresql
  mysql: %[1]s/mysql
  sqlite: %[1]s/sqlite
`, srv.URL)
	path := filepath.Join(t.TempDir(), "sqlkw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "sqlkw")
	assert.Contains(t, stdout.String(), "--out")
	assert.Contains(t, stdout.String(), "--concurrency")
}

func TestMain_Run_VerboseAndQuiet(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--verbose", "--quiet"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingConfig(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Hint")
}

func TestMain_Run_WritesKeywordFiles(t *testing.T) {
	t.Parallel()

	srv := newDocServer(t)
	out := filepath.Join(t.TempDir(), "keywords")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", writeConfig(t, srv), "--out", out, "--quiet"}, &stdout, &stderr)

	require.NoError(t, err)

	all, err := os.ReadFile(filepath.Join(out, sqlkw.MergedFileName))
	require.NoError(t, err)
	assert.Equal(t, "A\nABORT\nABSOLUTE\nACCESSIBLE\nACCOUNT\nALL\nSELECT\n", string(all))

	pg, err := os.ReadFile(filepath.Join(out, "postgresql.reserved.txt"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n", string(pg))

	_, err = os.Stat(filepath.Join(out, sqlkw.ReportFileName))
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()), "temp file left behind: %s", e.Name())
		if filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(out, e.Name()))
		require.NoError(t, err)
		assert.Equal(t, string(sqlkw.FormatLines(sqlkw.ParseLines(data))), string(data),
			"%s is not sorted and unique", e.Name())
	}

	assert.Contains(t, stdout.String(), "postgresql")
	assert.Contains(t, stdout.String(), "ok")
	assert.Contains(t, stdout.String(), "wrote")
	assert.Empty(t, stderr.String())
}

func TestMain_Run_ReportsFailedSource(t *testing.T) {
	t.Parallel()

	srv := newDocServer(t, "/mysql")
	out := filepath.Join(t.TempDir(), "keywords")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", writeConfig(t, srv), "--out", out}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "fetch-failed")
	assert.Contains(t, stdout.String(), "incomplete: mysql")
	assert.Contains(t, stderr.String(), "source failed")

	_, err = os.Stat(filepath.Join(out, "mysql.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(out, "sqlite.txt"))
	assert.NoError(t, err)
}

func TestMain_Run_FailsWhenNothingExtracted(t *testing.T) {
	t.Parallel()

	srv := newDocServer(t, "/generic", "/postgresql", "/mysql", "/sqlite")
	out := filepath.Join(t.TempDir(), "keywords")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", writeConfig(t, srv), "--out", out, "--quiet"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, sqlkw.ENOTFOUND, sqlkw.ErrorCode(err))
	assert.Contains(t, stdout.String(), "no files written")

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
