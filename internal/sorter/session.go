// Package sorter owns the sorting session: the source file set, the position
// counter, the shortcut registry and the actions that route or delete the
// current file.
package sorter

import (
	"path/filepath"

	"imgsort/internal/config"
	"imgsort/internal/errors"
	"imgsort/internal/log"
	"imgsort/internal/organize"
	"imgsort/internal/position"
	"imgsort/internal/shortcut"
	"imgsort/internal/source"
	"imgsort/pkg/types"
)

// Session is the single explicit state holder the presentation layer drives.
// It is not safe for concurrent use; callers run it on their UI loop.
type Session struct {
	files     *source.FileSet
	counter   *position.Counter
	shortcuts *shortcut.Registry
	ops       organize.Organizer
}

// New creates an empty session that uses ops for filesystem effects.
func New(ops organize.Organizer) *Session {
	return &Session{
		files:     source.New(),
		counter:   position.New(0),
		shortcuts: shortcut.NewRegistry(),
		ops:       ops,
	}
}

// NewWithConfig creates a session with presets and mode from cfg. The
// configured source directory is opened when set.
func NewWithConfig(cfg *config.Config, ops organize.Organizer) (*Session, error) {
	s := New(ops)
	s.shortcuts.SetGlobalMode(cfg.Mode())
	for _, key := range cfg.ShortcutKeys() {
		if err := s.shortcuts.Assign(key, cfg.Shortcuts[key]); err != nil {
			return nil, err
		}
	}
	if cfg.Directories.Source != "" {
		if err := s.SetSource(cfg.Directories.Source); err != nil {
			return s, err
		}
	}
	return s, nil
}

// SetSource rebuilds the file set from path and resets the position. An
// empty path is a cancelled pick and changes nothing.
func (s *Session) SetSource(path string) error {
	if path == "" {
		return nil
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if err := s.files.SetDirectory(path); err != nil {
		log.LogWithError(err).Warn("Source directory not changed")
		return err
	}
	s.counter.Reset(s.files.Count())
	log.LogWithFields(log.F("directory", path), log.F("files", s.files.Count())).Info("Source directory opened")
	return nil
}

// Rescan rebuilds the current source directory and resets the position.
func (s *Session) Rescan() error {
	if s.files.Directory() == "" {
		return nil
	}
	return s.SetSource(s.files.Directory())
}

// Next moves to the following file, wrapping around.
func (s *Session) Next() {
	s.counter.Next()
}

// Prev moves to the previous file, wrapping around.
func (s *Session) Prev() {
	s.counter.Prev()
}

// CurrentFile returns the name of the file at the current position.
func (s *Session) CurrentFile() (string, bool) {
	if s.counter.Current() == 0 {
		return "", false
	}
	return s.files.At(s.counter.Current())
}

// CurrentPath returns the full path of the current file.
func (s *Session) CurrentPath() (string, bool) {
	if s.counter.Current() == 0 {
		return "", false
	}
	return s.files.Path(s.counter.Current())
}

// Execute routes the current file to the target of the slot for key using
// the global mode, then drops it from the set and holds the position.
func (s *Session) Execute(key string) (types.SortResult, error) {
	slot, err := s.shortcuts.Slot(key)
	if err != nil {
		return types.SortResult{}, err
	}
	src, ok := s.CurrentPath()
	if !ok {
		return types.SortResult{}, errors.NewNoCurrentFile()
	}
	if !slot.Assigned() {
		return types.SortResult{}, errors.NewShortcutError("shortcut has no target", slot.Key, errors.UnassignedTarget)
	}

	mode := s.shortcuts.Mode()
	dest, err := s.ops.Route(src, slot.Target, mode)
	if err != nil {
		log.LogWithError(err).With(log.F("key", slot.Key)).Warn("Routing failed")
		return types.SortResult{}, err
	}

	s.removeCurrent()

	action := types.MoveAction
	if mode == types.Copy {
		action = types.CopyAction
	}
	result := types.SortResult{Key: slot.Key, Source: src, Destination: dest, Action: action}
	log.LogWithFields(log.F("key", slot.Key), log.F("action", action), log.F("source", src), log.F("destination", dest)).
		Info("File routed")
	return result, nil
}

// Delete removes the current file from disk, then from the set, holding
// the position.
func (s *Session) Delete() (types.SortResult, error) {
	src, ok := s.CurrentPath()
	if !ok {
		return types.SortResult{}, errors.NewNoCurrentFile()
	}
	if err := s.ops.DeleteFile(src); err != nil {
		log.LogWithError(err).Warn("Delete failed")
		return types.SortResult{}, err
	}

	s.removeCurrent()
	log.LogWithFields(log.F("path", src)).Info("File deleted")
	return types.SortResult{Source: src, Action: types.DeleteAction}, nil
}

// removeCurrent runs only after the filesystem step reported success.
func (s *Session) removeCurrent() {
	s.files.RemoveAt(s.counter.Current())
	s.counter.HoldAfterRemoval(s.files.Count())
}

// Assign sets the target directory for a shortcut slot.
func (s *Session) Assign(key, target string) error {
	if target == "" {
		return nil
	}
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}
	return s.shortcuts.Assign(key, target)
}

// Clear unsets a shortcut slot.
func (s *Session) Clear(key string) error {
	return s.shortcuts.Clear(key)
}

// SetMode sets the global routing mode.
func (s *Session) SetMode(mode types.Mode) {
	s.shortcuts.SetGlobalMode(mode)
}

// ToggleMode flips the global routing mode.
func (s *Session) ToggleMode() types.Mode {
	return s.shortcuts.ToggleMode()
}

// Mode returns the global routing mode.
func (s *Session) Mode() types.Mode {
	return s.shortcuts.Mode()
}

// Shortcuts exposes the registry for rendering.
func (s *Session) Shortcuts() *shortcut.Registry {
	return s.shortcuts
}

// Position returns the current 1-based index and the total.
func (s *Session) Position() (current, total int) {
	return s.counter.Current(), s.counter.Total()
}

// Counter returns the "File c / t" label.
func (s *Session) Counter() string {
	return s.counter.String()
}

// Directory returns the current source directory.
func (s *Session) Directory() string {
	return s.files.Directory()
}

// Files returns the eligible entries in order.
func (s *Session) Files() []string {
	return s.files.Entries()
}
