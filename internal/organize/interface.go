package organize

import (
	"imgsort/internal/config"
	"imgsort/pkg/types"
)

// Organizer defines the filesystem operations a sorting session needs.
// This allows for dependency injection in tests and other parts of the application
type Organizer interface {
	// SetConfig applies collision and directory-creation settings
	SetConfig(cfg *config.Config)

	// Route moves or copies a file into a target directory and returns the final path
	Route(src, targetDir string, mode types.Mode) (string, error)

	// DeleteFile removes a file from disk
	DeleteFile(path string) error
}

// Ensure Engine implements the Organizer interface
var _ Organizer = (*Engine)(nil)
