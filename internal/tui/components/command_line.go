package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CommandLine is the ":" prompt
type CommandLine struct {
	input textinput.Model
}

func NewCommandLine() *CommandLine {
	input := textinput.New()
	input.Prompt = ":"
	input.Placeholder = "source | assign <key> | clear <key> | mode move|copy | rescan | q"
	input.CharLimit = 4096
	input.Width = 60
	return &CommandLine{input: input}
}

// Open focuses an empty prompt
func (c *CommandLine) Open() tea.Cmd {
	c.input.SetValue("")
	return c.input.Focus()
}

// Close blurs the prompt and returns what was typed
func (c *CommandLine) Close() string {
	value := strings.TrimSpace(c.input.Value())
	c.input.Blur()
	c.input.SetValue("")
	return value
}

func (c *CommandLine) Value() string {
	return c.input.Value()
}

func (c *CommandLine) Focused() bool {
	return c.input.Focused()
}

func (c *CommandLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *CommandLine) View() string {
	if !c.input.Focused() {
		return ""
	}
	return c.input.View()
}
