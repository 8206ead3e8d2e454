package common

import (
	"imgsort/internal/shortcut"
	"imgsort/internal/tui/styles"
	"imgsort/pkg/types"
)

// Mode is the input mode of the terminal UI
type Mode int

const (
	Normal Mode = iota
	Command
	Confirm
	Picking
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Mode() Mode
	Directory() string
	Files() []string
	Position() (current, total int)
	Counter() string
	Slots() []shortcut.Slot
	RoutingMode() types.Mode
	Preview() *types.FileInfo
	Notice() string
	Styles() styles.Styles

	// Pre-rendered sub-components
	StatusView() string
	CommandView() string
	PickerView() string
	HelpView() string
	FileListView() string
	ShortcutView() string
}
