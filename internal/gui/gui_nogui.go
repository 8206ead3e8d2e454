//go:build nogui

package gui

import (
	"fmt"

	"imgsort/internal/config"
	"imgsort/internal/sorter"
	"imgsort/internal/watch"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(cfg *config.Config, session *sorter.Session, w *watch.Watcher) error {
	return fmt.Errorf("GUI not available in this build, use the tui command")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
