package types

import (
	"fmt"
	"strings"
)

// Mode is the routing mode shared by every shortcut slot.
type Mode int

const (
	// Move relocates the current file into the target directory
	Move Mode = iota
	// Copy leaves the original in place and writes a copy into the target directory
	Copy
)

// String returns the display name of the mode
func (m Mode) String() string {
	switch m {
	case Copy:
		return "Copy"
	default:
		return "Move"
	}
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == Move {
		return Copy
	}
	return Move
}

// ParseMode accepts "move" or "copy" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "move":
		return Move, nil
	case "copy":
		return Copy, nil
	}
	return Move, fmt.Errorf("unknown mode %q (want move or copy)", s)
}
