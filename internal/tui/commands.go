package tui

import (
	"fmt"
	"strings"

	"imgsort/internal/config"
	"imgsort/internal/shortcut"
	"imgsort/internal/tui/components"
	"imgsort/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
)

// executeCommand runs a ":" command line. A command that needs a path and
// gets none opens the directory picker.
func (m *Model) executeCommand(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	name, rest := splitWord(line)

	switch name {
	case "q", "quit":
		return tea.Quit

	case "source", "src", "o":
		if rest == "" {
			return m.openPicker("")
		}
		return m.setSource(config.ExpandHome(rest))

	case "assign", "a":
		k, path := splitWord(rest)
		norm, err := shortcut.Normalize(k)
		if err != nil {
			m.status.SetError(err)
			return nil
		}
		if path == "" {
			return m.openPicker(norm)
		}
		return m.assign(norm, config.ExpandHome(path))

	case "clear", "c":
		if err := m.session.Clear(rest); err != nil {
			m.status.SetError(err)
			return nil
		}
		norm, _ := shortcut.Normalize(rest)
		m.status.SetText(norm + " cleared")
		return nil

	case "mode", "m":
		mode, err := types.ParseMode(rest)
		if err != nil {
			m.status.SetError(err)
			return nil
		}
		m.session.SetMode(mode)
		m.status.SetText("Mode: " + mode.String())
		return nil

	case "rescan", "r":
		return m.rescan()
	}

	m.status.Set(fmt.Sprintf("Unknown command: %s", name), components.LevelError)
	return nil
}

// splitWord returns the first word and the trimmed remainder.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
