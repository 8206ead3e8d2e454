// Package watch notices changes to the source directory so the interface
// can offer a rescan.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"imgsort/internal/classify"
	"imgsort/internal/log"

	"github.com/fsnotify/fsnotify"
)

// ChangeOp is the kind of change seen for an eligible name.
type ChangeOp int

const (
	Created ChangeOp = iota
	Removed
	Renamed
)

func (op ChangeOp) String() string {
	switch op {
	case Created:
		return "created"
	case Removed:
		return "removed"
	case Renamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Change is a membership change in the watched directory.
type Change struct {
	Name      string
	Path      string
	Op        ChangeOp
	Timestamp time.Time
}

// Watcher monitors one directory at a time using fsnotify
type Watcher struct {
	// Directory being watched, "" when none
	directory string

	// Channel to deliver changes
	changes chan Change

	// Channel to signal stop, and one closed when the loop exits
	stopChan chan struct{}
	done     chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// New creates a new directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changes:   make(chan Change, 16),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// SetDirectory retargets the watcher at dir, dropping the previous watch.
// An empty dir only drops the current watch.
func (w *Watcher) SetDirectory(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if dir == w.directory {
		return nil
	}
	if w.directory != "" {
		if err := w.fsWatcher.Remove(w.directory); err != nil {
			log.LogWithFields(log.F("directory", w.directory), log.F("error", err)).Debug("Removing watch failed")
		}
		w.directory = ""
	}
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}
	w.directory = dir
	log.LogWithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Directory returns the watched directory.
func (w *Watcher) Directory() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.directory
}

// Changes returns the channel that delivers changes. It is closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins the event loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	w.running = true

	go w.loop()
	log.Debug("Watcher started")
	return nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			change, ok := w.translate(event)
			if !ok {
				continue
			}
			// Never block the loop; a dropped change still leaves earlier ones queued
			select {
			case w.changes <- change:
			default:
				log.LogWithFields(log.F("file", event.Name)).Warn("Change channel is full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// translate keeps create, remove and rename events for eligible names
// directly inside the watched directory.
func (w *Watcher) translate(event fsnotify.Event) (Change, bool) {
	w.mutex.RLock()
	dir := w.directory
	w.mutex.RUnlock()

	if dir == "" || filepath.Dir(event.Name) != dir {
		return Change{}, false
	}
	name := filepath.Base(event.Name)
	if !classify.Accepted(name) {
		return Change{}, false
	}

	var op ChangeOp
	switch {
	case event.Op.Has(fsnotify.Create):
		op = Created
	case event.Op.Has(fsnotify.Remove):
		op = Removed
	case event.Op.Has(fsnotify.Rename):
		op = Renamed
	default:
		return Change{}, false
	}
	return Change{Name: name, Path: event.Name, Op: op, Timestamp: time.Now()}, true
}

// Stop halts the watcher and closes the change channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if !w.running {
		w.mutex.Unlock()
		w.fsWatcher.Close()
		return
	}
	w.running = false
	close(w.stopChan)
	w.mutex.Unlock()

	<-w.done
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	log.Debug("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
