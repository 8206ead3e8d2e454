package main

import (
	"strings"

	"imgsort/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// palette colors command output; load switches it to the configured theme.
var palette = config.GetTheme("default")

func usePalette(name string) {
	palette = config.GetTheme(name)
}

func primaryText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Primary)).Render(s)
}

func successText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Success)).Render(s)
}

func errorText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Error)).Render(s)
}

func dimText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(s)
}

// themeSwatch renders a theme name followed by its three row colors.
func themeSwatch(name string) string {
	p := config.GetTheme(name)
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color(p.Primary)).Render(name))
	for _, c := range p.Rows {
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("   "))
	}
	return sb.String()
}

// logo draws the banner shown above the usage text.
func logo() string {
	art := []string{
		` _                                 _   `,
		`(_)_ __ ___   __ _ ___  ___  _ __| |_ `,
		`| | '_ ' _ \ / _' / __|/ _ \| '__| __|`,
		`| | | | | | | (_| \__ \ (_) | |  | |_ `,
		`|_|_| |_| |_|\__, |___/\___/|_|   \__|`,
		`             |___/                    `,
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Primary))
	return style.Render(strings.Join(art, "\n"))
}
