package sqlkw

import "context"

// File names of a published keyword snapshot.
const (
	MergedFileName      = "all.txt"
	MergedIndexFileName = "all.json"
	ReportFileName      = "report.json"
)

// FileName returns the name of the file listing every keyword of d.
func FileName(d Dialect) string {
	return string(d) + ".txt"
}

// ReservedFileName returns the name of the file listing the reserved keywords of d.
func ReservedFileName(d Dialect) string {
	return string(d) + ".reserved.txt"
}

// NonReservedFileName returns the name of the file listing the non-reserved keywords of d.
func NonReservedFileName(d Dialect) string {
	return string(d) + ".nonreserved.txt"
}

// ManagedFileNames returns every file name a snapshot may contain.
// Stores use it to remove files a previous run published but the current
// run did not produce.
func ManagedFileNames() []string {
	names := []string{MergedFileName, MergedIndexFileName, ReportFileName}
	for _, d := range Dialects() {
		names = append(names, FileName(d), ReservedFileName(d), NonReservedFileName(d))
	}
	return names
}

// KeywordStore persists a keyword snapshot with atomic semantics.
// Save writes to a temporary location; Commit publishes every saved file
// and replaces the previous snapshot; Abort discards pending files.
type KeywordStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Commit() error
	Abort() error
}
