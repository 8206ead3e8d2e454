package components

import (
	"fmt"
	"strings"

	"imgsort/internal/tui/styles"
)

// FileList renders a window of the source entries around the current one.
type FileList struct {
	files   []string
	current int // 1-based, 0 when empty
	height  int
	styles  styles.Styles
}

func NewFileList(st styles.Styles) *FileList {
	return &FileList{styles: st, height: 9}
}

func (fl *FileList) SetFiles(files []string, current int) {
	fl.files = files
	fl.current = current
}

// SetHeight sets how many entries are shown at most
func (fl *FileList) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	fl.height = h
}

// window returns the [start, end) slice indexes centered on current.
func (fl *FileList) window() (int, int) {
	n := len(fl.files)
	if n <= fl.height {
		return 0, n
	}
	start := fl.current - 1 - fl.height/2
	if start < 0 {
		start = 0
	}
	end := start + fl.height
	if end > n {
		end = n
		start = end - fl.height
	}
	return start, end
}

func (fl *FileList) View() string {
	if len(fl.files) == 0 {
		return fl.styles.Dim.Render("No images found")
	}

	var s strings.Builder
	start, end := fl.window()
	if start > 0 {
		s.WriteString(fl.styles.Dim.Render(fmt.Sprintf("  … %d more", start)) + "\n")
	}
	for i := start; i < end; i++ {
		if i == fl.current-1 {
			s.WriteString(fl.styles.Current.Render("> "+fl.files[i]) + "\n")
			continue
		}
		s.WriteString(fl.styles.Dim.Render("  "+fl.files[i]) + "\n")
	}
	if end < len(fl.files) {
		s.WriteString(fl.styles.Dim.Render(fmt.Sprintf("  … %d more", len(fl.files)-end)) + "\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
