package sqlkw

// Source identifies one documentation page keywords are extracted from.
type Source struct {
	Name    string  `json:"name"`
	Dialect Dialect `json:"dialect"`
	URL     string  `json:"url"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if !s.Dialect.Valid() {
		return Errorf(EINVALID, "source %q: unknown dialect %q", s.Name, s.Dialect)
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source %q: URL required", s.Name)
	}
	return nil
}

// Default documentation pages for each dialect.
const (
	GenericURL    = "https://jakewheat.github.io/sql-overview/sql-2016-foundation-grammar.html"
	PostgreSQLURL = "https://www.postgresql.org/docs/current/sql-keywords-appendix.html"
	MySQLURL      = "https://dev.mysql.com/doc/refman/8.0/en/keywords.html"
	SQLiteURL     = "https://www.sqlite.org/lang_keywords.html"
)

// DefaultSources returns the four built-in sources in dialect order.
func DefaultSources() []Source {
	return []Source{
		{Name: "sql-2016", Dialect: DialectGeneric, URL: GenericURL},
		{Name: "postgresql", Dialect: DialectPostgreSQL, URL: PostgreSQLURL},
		{Name: "mysql", Dialect: DialectMySQL, URL: MySQLURL},
		{Name: "sqlite", Dialect: DialectSQLite, URL: SQLiteURL},
	}
}
