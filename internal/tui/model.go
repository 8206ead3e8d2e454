package tui

import (
	"fmt"
	"os"

	"imgsort/internal/config"
	"imgsort/internal/log"
	"imgsort/internal/preview"
	"imgsort/internal/shortcut"
	"imgsort/internal/sorter"
	"imgsort/internal/tui/common"
	"imgsort/internal/tui/components"
	"imgsort/internal/tui/messages"
	"imgsort/internal/tui/styles"
	"imgsort/internal/tui/views"
	"imgsort/internal/watch"
	"imgsort/pkg/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const changedNotice = "folder changed, ctrl+r to rescan"

// Model is the terminal front end over a sorting session.
type Model struct {
	session *sorter.Session
	cfg     *config.Config
	watcher *watch.Watcher

	keys     KeyMap
	help     help.Model
	styles   styles.Styles
	status   *components.StatusBar
	command  *components.CommandLine
	fileList *components.FileList
	panel    *components.ShortcutPanel
	picker   filepicker.Model

	mode common.Mode
	// pickFor is "" while choosing a source, otherwise the slot key
	pickFor string
	preview *types.FileInfo
	notice  string

	width  int
	height int
}

// New creates the model. w may be nil to run without a watcher.
func New(session *sorter.Session, cfg *config.Config, w *watch.Watcher) *Model {
	if cfg == nil {
		cfg = config.New()
	}
	st := styles.New(config.GetTheme(cfg.Theme.Name))
	return &Model{
		session:  session,
		cfg:      cfg,
		watcher:  w,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   st,
		status:   components.NewStatusBar(st),
		command:  components.NewCommandLine(),
		fileList: components.NewFileList(st),
		panel:    components.NewShortcutPanel(st),
		mode:     common.Normal,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	m.retargetWatcher()
	return tea.Batch(m.refreshPreview(), m.waitForChange())
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.fileList.SetHeight(msg.Height - 16)
		m.panel.SetWidth(msg.Width/2 - 8)
		return m, nil

	case messages.PreviewMsg:
		if cur, ok := m.session.CurrentPath(); ok && cur == msg.Path {
			m.preview = msg.Info
			if msg.Error != nil {
				log.LogWithError(msg.Error).Debug("Preview unavailable")
			}
		}
		return m, nil

	case messages.SourceChangedMsg:
		m.notice = changedNotice
		log.LogWithFields(log.F("file", msg.Change.Name), log.F("op", msg.Change.Op.String())).Debug("Source changed")
		return m, m.waitForChange()

	case messages.WatchClosedMsg:
		return m, nil

	case messages.ErrorMsg:
		m.status.SetError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case common.Command:
			return m.handleCommandMode(msg)
		case common.Confirm:
			return m.handleConfirm(msg)
		case common.Picking:
			return m.handlePicking(msg)
		default:
			return m.handleNormalKeys(msg)
		}
	}

	// Directory listings and other internal picker messages
	if m.mode == common.Picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	if m.mode == common.Command {
		return m, m.command.Update(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		m.session.Prev()
		return m, m.refreshPreview()
	case key.Matches(msg, m.keys.Next):
		m.session.Next()
		return m, m.refreshPreview()
	case key.Matches(msg, m.keys.Rescan):
		return m, m.rescan()
	case key.Matches(msg, m.keys.ToggleMode):
		mode := m.session.ToggleMode()
		m.status.SetText("Mode: " + mode.String())
	case key.Matches(msg, m.keys.Delete):
		return m, m.requestDelete()
	case key.Matches(msg, m.keys.EnterCmdMode):
		m.mode = common.Command
		return m, m.command.Open()
	case key.Matches(msg, m.keys.Route):
		return m, m.route(msg.String())
	}
	return m, nil
}

func (m *Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.command.Close()
		m.mode = common.Normal
		return m, nil
	case tea.KeyEnter:
		line := m.command.Close()
		m.mode = common.Normal
		return m, m.executeCommand(line)
	}
	return m, m.command.Update(msg)
}

func (m *Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.mode = common.Normal
		return m, m.deleteCurrent()
	case key.Matches(msg, m.keys.No):
		m.mode = common.Normal
		m.status.SetText("Delete cancelled")
	}
	return m, nil
}

func (m *Model) handlePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = common.Normal
		m.status.SetText("No change")
		return m, nil
	case ".":
		return m, m.applyPick(m.picker.CurrentDirectory)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, m.applyPick(path)
	}
	return m, cmd
}

// openPicker starts a directory picker for a source (key "") or a slot.
func (m *Model) openPicker(forKey string) tea.Cmd {
	start := m.session.Directory()
	if forKey != "" {
		if slot, err := m.session.Shortcuts().Slot(forKey); err == nil && slot.Assigned() {
			start = slot.Target
		}
	}
	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		}
	}

	fp := filepicker.New()
	fp.CurrentDirectory = start
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.Height = 12
	if m.height > 20 {
		fp.Height = m.height - 10
	}

	m.picker = fp
	m.pickFor = forKey
	m.mode = common.Picking
	return m.picker.Init()
}

func (m *Model) applyPick(path string) tea.Cmd {
	m.mode = common.Normal
	if m.pickFor == "" {
		return m.setSource(path)
	}
	return m.assign(m.pickFor, path)
}

func (m *Model) setSource(path string) tea.Cmd {
	if err := m.session.SetSource(path); err != nil {
		m.status.SetError(err)
		return nil
	}
	m.notice = ""
	m.retargetWatcher()
	_, total := m.session.Position()
	m.status.Set(fmt.Sprintf("Opened %s (%d images)", m.session.Directory(), total), components.LevelSuccess)
	return m.refreshPreview()
}

func (m *Model) rescan() tea.Cmd {
	if m.session.Directory() == "" {
		m.status.Set("No source directory", components.LevelWarning)
		return nil
	}
	if err := m.session.Rescan(); err != nil {
		m.status.SetError(err)
		return nil
	}
	m.notice = ""
	m.status.SetText("Rescanned " + m.session.Directory())
	return m.refreshPreview()
}

func (m *Model) assign(k, path string) tea.Cmd {
	if err := m.session.Assign(k, path); err != nil {
		m.status.SetError(err)
		return nil
	}
	slot, _ := m.session.Shortcuts().Slot(k)
	m.status.Set(fmt.Sprintf("%s → %s", slot.Key, slot.Target), components.LevelSuccess)
	return nil
}

func (m *Model) route(k string) tea.Cmd {
	result, err := m.session.Execute(k)
	if err != nil {
		m.status.SetError(err)
		return nil
	}
	m.status.Set(result.String(), components.LevelSuccess)
	return m.refreshPreview()
}

func (m *Model) requestDelete() tea.Cmd {
	name, ok := m.session.CurrentFile()
	if !ok {
		m.status.Set("No current file", components.LevelWarning)
		return nil
	}
	if m.cfg.Settings.ConfirmDelete {
		m.mode = common.Confirm
		m.status.Set(fmt.Sprintf("Delete %s? (y/n)", name), components.LevelWarning)
		return nil
	}
	return m.deleteCurrent()
}

func (m *Model) deleteCurrent() tea.Cmd {
	result, err := m.session.Delete()
	if err != nil {
		m.status.SetError(err)
		return nil
	}
	m.status.Set(result.String(), components.LevelSuccess)
	return m.refreshPreview()
}

func (m *Model) refreshPreview() tea.Cmd {
	m.preview = nil
	path, ok := m.session.CurrentPath()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		info, err := preview.Describe(path)
		return messages.PreviewMsg{Path: path, Info: info, Error: err}
	}
}

func (m *Model) retargetWatcher() {
	if m.watcher == nil || !m.cfg.Settings.WatchSource {
		return
	}
	if err := m.watcher.SetDirectory(m.session.Directory()); err != nil {
		log.LogWithFields(log.F("error", err)).Warn("Could not watch source directory")
	}
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil || !m.cfg.Settings.WatchSource {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return messages.WatchClosedMsg{}
		}
		return messages.SourceChangedMsg{Change: change}
	}
}

// ModelReader implementation

func (m *Model) Mode() common.Mode        { return m.mode }
func (m *Model) Directory() string        { return m.session.Directory() }
func (m *Model) Files() []string          { return m.session.Files() }
func (m *Model) Counter() string          { return m.session.Counter() }
func (m *Model) Slots() []shortcut.Slot   { return m.session.Shortcuts().Slots() }
func (m *Model) RoutingMode() types.Mode  { return m.session.Mode() }
func (m *Model) Preview() *types.FileInfo { return m.preview }
func (m *Model) Notice() string           { return m.notice }
func (m *Model) Styles() styles.Styles    { return m.styles }

func (m *Model) Position() (current, total int) {
	return m.session.Position()
}

func (m *Model) StatusView() string  { return m.status.View() }
func (m *Model) CommandView() string { return m.command.View() }

func (m *Model) PickerView() string {
	if m.mode != common.Picking {
		return ""
	}
	title := "Choose source folder"
	if m.pickFor != "" {
		title = "Choose target for " + m.pickFor
	}
	return m.styles.Title.Render(title) + "\n" +
		m.styles.Dim.Render(m.picker.CurrentDirectory) + "\n\n" +
		m.picker.View() + "\n" +
		m.styles.Help.Render("enter/l open · h back · . choose this folder · esc cancel")
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

// FileListView renders the entry window around the current file.
func (m *Model) FileListView() string {
	cur, _ := m.session.Position()
	m.fileList.SetFiles(m.session.Files(), cur)
	return m.fileList.View()
}

// ShortcutView renders the slot panel.
func (m *Model) ShortcutView() string {
	return m.panel.View(m.Slots(), m.RoutingMode())
}

// Session exposes the underlying session
func (m *Model) Session() *sorter.Session {
	return m.session
}

// Status returns the status text and level
func (m *Model) Status() (string, components.Level) {
	return m.status.Text(), m.status.Level()
}
