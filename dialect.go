package sqlkw

import "strings"

// Dialect identifies one SQL vendor's or standard's keyword behavior.
// The set is closed: Generic, PostgreSQL, MySQL and SQLite.
type Dialect string

// Dialect constants.
const (
	DialectGeneric    Dialect = "generic"
	DialectPostgreSQL Dialect = "postgresql"
	DialectMySQL      Dialect = "mysql"
	DialectSQLite     Dialect = "sqlite"
)

// Dialects returns every supported dialect in a fixed order.
func Dialects() []Dialect {
	return []Dialect{DialectGeneric, DialectPostgreSQL, DialectMySQL, DialectSQLite}
}

// Valid reports whether d is one of the supported dialects.
func (d Dialect) Valid() bool {
	switch d {
	case DialectGeneric, DialectPostgreSQL, DialectMySQL, DialectSQLite:
		return true
	}
	return false
}

// ParseDialect returns the dialect named s (case-insensitive).
// Returns EINVALID if s does not name a supported dialect.
func ParseDialect(s string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", Errorf(EINVALID, "unknown dialect %q", s)
	}
	return d, nil
}
