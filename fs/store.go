// Package fs provides file-based storage for keyword snapshots.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/fwojciec/sqlkw"
	"github.com/spf13/afero"
)

// Ensure Store implements sqlkw.KeywordStore at compile time.
var _ sqlkw.KeywordStore = (*Store)(nil)

// tempSuffix marks files that have been saved but not yet committed.
const tempSuffix = ".tmp"

// backupSuffix marks published files set aside while a commit is in progress.
const backupSuffix = ".bak"

// Store implements sqlkw.KeywordStore with atomic update semantics.
// Files are saved next to their final name with a ".tmp" suffix and renamed
// into place on Commit, so a reader never sees a partially written file.
type Store struct {
	fs      afero.Fs
	dir     string
	pending []string

	// swept is set once leftovers of an interrupted run have been removed.
	swept bool
}

// NewStore creates a new Store writing to dir on the given filesystem.
func NewStore(fsys afero.Fs, dir string) *Store {
	return &Store{
		fs:  fsys,
		dir: dir,
	}
}

// NewOSStore creates a new Store writing to dir on the local filesystem.
func NewOSStore(dir string) *Store {
	return NewStore(afero.NewOsFs(), dir)
}

// Dir returns the directory the store publishes to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) tempPath(name string) string {
	return filepath.Join(s.dir, name+tempSuffix)
}

func (s *Store) finalPath(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) backupPath(name string) string {
	return filepath.Join(s.dir, name+backupSuffix)
}

// remove deletes path, treating a missing file as success.
func (s *Store) remove(path string) error {
	if err := s.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// sweep removes temp and backup files of managed names left behind by a run
// that crashed before committing or aborting.
func (s *Store) sweep() error {
	for _, name := range sqlkw.ManagedFileNames() {
		if err := s.remove(s.tempPath(name)); err != nil {
			return err
		}
		if err := s.remove(s.backupPath(name)); err != nil {
			return err
		}
	}
	s.swept = true
	return nil
}

// Save writes data to the temporary file for name.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return sqlkw.Errorf(sqlkw.EINVALID, "invalid file name %q", name)
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	if !s.swept {
		if err := s.sweep(); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(s.fs, s.tempPath(name), data, 0644); err != nil {
		return err
	}

	s.pending = append(s.pending, name)
	return nil
}

// Commit renames every saved file into place, then removes files a previous
// snapshot published that this one did not produce. Published files are set
// aside before being replaced; if any rename fails they are restored, so the
// directory keeps the previous snapshot instead of a mix of two runs.
func (s *Store) Commit() error {
	names := append([]string(nil), s.pending...)
	sort.Strings(names)
	names = slices.Compact(names)

	var backedUp, published []string
	rollback := func(cause error) error {
		errs := []error{cause}
		for _, name := range published {
			errs = append(errs, s.remove(s.finalPath(name)))
		}
		for _, name := range backedUp {
			errs = append(errs, s.fs.Rename(s.backupPath(name), s.finalPath(name)))
		}
		for _, name := range names {
			errs = append(errs, s.remove(s.tempPath(name)))
		}
		s.pending = nil
		return errors.Join(errs...)
	}

	for _, name := range names {
		exists, err := afero.Exists(s.fs, s.finalPath(name))
		if err != nil {
			return rollback(err)
		}
		if !exists {
			continue
		}
		if err := s.fs.Rename(s.finalPath(name), s.backupPath(name)); err != nil {
			return rollback(err)
		}
		backedUp = append(backedUp, name)
	}
	for _, name := range names {
		if err := s.fs.Rename(s.tempPath(name), s.finalPath(name)); err != nil {
			return rollback(err)
		}
		published = append(published, name)
	}
	s.pending = nil

	var errs []error
	for _, name := range backedUp {
		errs = append(errs, s.remove(s.backupPath(name)))
	}
	saved := make(map[string]bool, len(names))
	for _, name := range names {
		saved[name] = true
	}
	for _, name := range sqlkw.ManagedFileNames() {
		if !saved[name] {
			errs = append(errs, s.remove(s.finalPath(name)))
		}
	}
	return errors.Join(errs...)
}

// Abort discards every saved but uncommitted file.
func (s *Store) Abort() error {
	var errs []error
	for _, name := range s.pending {
		if err := s.remove(s.tempPath(name)); err != nil {
			errs = append(errs, err)
		}
	}
	s.pending = nil
	return errors.Join(errs...)
}
