//go:build !nogui

package gui

import (
	"imgsort/internal/config"
	"imgsort/internal/sorter"
	"imgsort/internal/watch"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}

var _ Interface = (*App)(nil)

// StartGUI opens the window and blocks until it is closed
func StartGUI(cfg *config.Config, session *sorter.Session, w *watch.Watcher) error {
	NewApp(cfg, session, w).Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
