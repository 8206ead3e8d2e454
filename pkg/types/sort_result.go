package types

import (
	"fmt"
	"path/filepath"
)

// Action names the filesystem effect a sort produced.
type Action string

const (
	MoveAction   Action = "move"
	CopyAction   Action = "copy"
	DeleteAction Action = "delete"
)

// SortResult holds the outcome of one successful routing or delete
type SortResult struct {
	Key         string `json:"key,omitempty"`
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Action      Action `json:"action"`
}

// String renders the result for status lines: the file's base name and
// the directory it went to.
func (r SortResult) String() string {
	name := filepath.Base(r.Source)
	switch r.Action {
	case DeleteAction:
		return "Deleted " + name
	case CopyAction:
		return fmt.Sprintf("[%s] Copied %s → %s", r.Key, name, filepath.Dir(r.Destination))
	default:
		return fmt.Sprintf("[%s] Moved %s → %s", r.Key, name, filepath.Dir(r.Destination))
	}
}
