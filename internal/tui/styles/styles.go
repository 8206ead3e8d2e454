package styles

import (
	"imgsort/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the rendered form of a theme palette
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Counter  lipgloss.Style
	Current  lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Key      lipgloss.Style
	ModeMove lipgloss.Style
	ModeCopy lipgloss.Style
	// Rows colors the three shortcut keyboard rows
	Rows [3]lipgloss.Style
}

// New builds styles from a palette
func New(p config.Palette) Styles {
	s := Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)),
		Counter: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Emphasis)),
		Current: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Success)),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Info)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Info)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Error)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Width(3),
		ModeMove: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(p.Warning)),
		ModeCopy: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(p.Info)),
	}
	for i, c := range p.Rows {
		s.Rows[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return s
}

// Default returns the styles of the default theme
func Default() Styles {
	return New(config.GetTheme("default"))
}
