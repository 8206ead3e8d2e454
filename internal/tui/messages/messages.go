package messages

import (
	"imgsort/internal/watch"
	"imgsort/pkg/types"
)

type ErrorMsg struct {
	Err error
}

// PreviewMsg carries facts for the file at Path
type PreviewMsg struct {
	Path  string
	Info  *types.FileInfo
	Error error
}

// SourceChangedMsg reports a change in the watched source directory
type SourceChangedMsg struct {
	Change watch.Change
}

// WatchClosedMsg is sent once the watcher's channel closes
type WatchClosedMsg struct{}
