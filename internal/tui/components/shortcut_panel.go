package components

import (
	"fmt"
	"strings"

	"imgsort/internal/shortcut"
	"imgsort/internal/tui/styles"
	"imgsort/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// ShortcutPanel renders the fifteen slots as three keyboard rows.
type ShortcutPanel struct {
	styles styles.Styles
	width  int
}

func NewShortcutPanel(st styles.Styles) *ShortcutPanel {
	return &ShortcutPanel{styles: st, width: 28}
}

// SetWidth bounds the label column
func (p *ShortcutPanel) SetWidth(w int) {
	if w < 12 {
		w = 12
	}
	p.width = w
}

func (p *ShortcutPanel) View(slots []shortcut.Slot, mode types.Mode) string {
	modeStyle := p.styles.ModeMove
	if mode == types.Copy {
		modeStyle = p.styles.ModeCopy
	}

	lines := []string{p.styles.Title.Render("Shortcuts") + "  " + modeStyle.Render(mode.String())}
	for i, slot := range slots {
		if i > 0 && i%5 == 0 {
			lines = append(lines, "")
		}
		row := p.styles.Rows[shortcut.Row(slot.Key)]
		label := shortcut.Unassigned
		if slot.Assigned() {
			label = p.shorten(slot.Target)
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			row.Inherit(p.styles.Key).Render(strings.ToLower(slot.Key)),
			row.Render(label)))
	}
	return p.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// shorten keeps the tail of long paths, where targets differ.
func (p *ShortcutPanel) shorten(path string) string {
	r := []rune(path)
	if len(r) <= p.width {
		return path
	}
	return "…" + string(r[len(r)-(p.width-1):])
}
