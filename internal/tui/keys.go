package tui

import (
	"strings"

	"imgsort/internal/shortcut"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings of the sorting view.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Navigation
	Prev   key.Binding
	Next   key.Binding
	Rescan key.Binding

	// Actions
	Route        key.Binding // Any shortcut letter
	Delete       key.Binding
	ToggleMode   key.Binding
	EnterCmdMode key.Binding

	// Confirm prompt
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the bindings shown in help.
func DefaultKeyMap() KeyMap {
	letters := make([]string, 0, 30)
	for _, k := range shortcut.Keys() {
		letters = append(letters, strings.ToLower(k), k)
	}

	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rescan"),
		),
		Route: key.NewBinding(
			key.WithKeys(letters...),
			key.WithHelp("qwert/asdfg/zxcvb", "send to shortcut"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "delete"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "move/copy"),
		),
		EnterCmdMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Route, k.ToggleMode, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Rescan},
		{k.Route, k.ToggleMode, k.Delete},
		{k.EnterCmdMode, k.Help, k.Quit},
	}
}
