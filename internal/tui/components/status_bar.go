package components

import (
	"imgsort/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Level picks the status style
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

type StatusBar struct {
	text   string
	level  Level
	styles styles.Styles
}

func NewStatusBar(st styles.Styles) *StatusBar {
	return &StatusBar{styles: st}
}

func (s *StatusBar) Set(text string, level Level) {
	s.text = text
	s.level = level
}

func (s *StatusBar) SetText(text string) {
	s.Set(text, LevelInfo)
}

func (s *StatusBar) SetError(err error) {
	if err == nil {
		return
	}
	s.Set(err.Error(), LevelError)
}

func (s *StatusBar) Clear() {
	s.text = ""
	s.level = LevelInfo
}

func (s *StatusBar) Text() string {
	return s.text
}

func (s *StatusBar) Level() Level {
	return s.level
}

func (s *StatusBar) style() lipgloss.Style {
	switch s.level {
	case LevelSuccess:
		return s.styles.Success
	case LevelWarning:
		return s.styles.Warning
	case LevelError:
		return s.styles.Error
	default:
		return s.styles.Info
	}
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	return s.style().Render(s.text)
}
