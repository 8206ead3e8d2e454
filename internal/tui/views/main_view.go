package views

import (
	"strings"

	"imgsort/internal/tui/common"
	"imgsort/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// RenderMainView lays out header, shortcut panel, current file and footer.
func RenderMainView(m common.ModelReader) string {
	st := m.Styles()
	var sections []string

	sections = append(sections, renderHeader(m))
	if notice := m.Notice(); notice != "" {
		sections = append(sections, st.Warning.Render(notice))
	}

	if m.Mode() == common.Picking {
		sections = append(sections, m.PickerView())
	} else {
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			m.ShortcutView(),
			"  ",
			renderCurrent(m),
		)
		sections = append(sections, body)
	}

	sections = append(sections, renderFooter(m))
	return st.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderHeader(m common.ModelReader) string {
	st := m.Styles()
	dir := m.Directory()
	if dir == "" {
		dir = "(no source, :source to choose)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.Title.Render("imgsort"),
		"  ",
		st.Counter.Render(m.Counter()),
		"  ",
		st.Dim.Render(dir),
	)
}

func renderCurrent(m common.ModelReader) string {
	st := m.Styles()
	cur, _ := m.Position()
	if cur == 0 {
		return st.Dim.Render("Nothing to sort")
	}

	files := m.Files()
	lines := []string{st.Current.Render(files[cur-1])}
	lines = append(lines, renderFacts(m.Preview())...)
	lines = append(lines, "", m.FileListView())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFacts lists preview facts, one per line.
func renderFacts(info *types.FileInfo) []string {
	if info == nil {
		return nil
	}
	facts := []string{info.Kind + ", " + info.HumanSize()}
	if d := info.Dimensions(); d != "" {
		facts = append(facts, d)
	}
	if info.Taken != "" {
		facts = append(facts, "taken "+info.Taken)
	}
	if info.Camera != "" {
		facts = append(facts, info.Camera)
	}
	return facts
}

func renderFooter(m common.ModelReader) string {
	var lines []string
	if m.Mode() == common.Command {
		lines = append(lines, m.CommandView())
	} else if status := m.StatusView(); status != "" {
		lines = append(lines, status)
	}
	if m.Mode() != common.Picking {
		lines = append(lines, m.HelpView())
	}
	return "\n" + strings.Join(lines, "\n")
}
