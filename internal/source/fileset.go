// Package source holds the set of eligible image files in the current
// source directory.
package source

import (
	"os"
	"path/filepath"

	"imgsort/internal/classify"
	"imgsort/internal/errors"
	"imgsort/internal/log"
)

// FileSet is the current source directory and its eligible entries, in the
// order the directory listing returned them.
type FileSet struct {
	directory string
	entries   []string
}

// New returns an empty file set with no directory.
func New() *FileSet {
	return &FileSet{}
}

// SetDirectory lists path and replaces the set wholesale. An empty path means
// the picker was cancelled and nothing changes. On error the previous set is
// kept.
func (s *FileSet) SetDirectory(path string) error {
	if path == "" {
		return nil
	}

	names, err := listNames(path)
	if err != nil {
		return err
	}

	entries := make([]string, 0, len(names))
	for _, name := range names {
		// No IsDir check: a directory named like an image is kept.
		if classify.Accepted(name) {
			entries = append(entries, name)
		}
	}

	s.directory = path
	s.entries = entries
	log.LogWithFields(log.F("directory", path), log.F("eligible", len(entries)), log.F("listed", len(names))).
		Debug("Source file set rebuilt")
	return nil
}

// listNames returns directory entry names in raw listing order.
func listNames(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileError("cannot open source directory", path, errors.DirectoryUnreadable, err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, errors.NewFileError("cannot list source directory", path, errors.DirectoryUnreadable, err)
	}
	return names, nil
}

// Directory returns the current source directory, "" if none was set.
func (s *FileSet) Directory() string {
	return s.directory
}

// Count returns the number of eligible entries.
func (s *FileSet) Count() int {
	return len(s.entries)
}

// At returns the entry at 1-based index i.
func (s *FileSet) At(i int) (string, bool) {
	if i < 1 || i > len(s.entries) {
		return "", false
	}
	return s.entries[i-1], true
}

// Path returns the full path of the entry at 1-based index i.
func (s *FileSet) Path(i int) (string, bool) {
	name, ok := s.At(i)
	if !ok {
		return "", false
	}
	return filepath.Join(s.directory, name), true
}

// RemoveAt drops the entry at 1-based index i from memory only.
func (s *FileSet) RemoveAt(i int) bool {
	if i < 1 || i > len(s.entries) {
		return false
	}
	s.entries = append(s.entries[:i-1], s.entries[i:]...)
	return true
}

// Entries returns a copy of the ordered entries.
func (s *FileSet) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
