//go:build !nogui

package gui

import (
	"image/color"

	"imgsort/internal/config"
	"imgsort/internal/log"
	"imgsort/internal/sorter"
	"imgsort/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"
)

const changedNotice = "Folder changed, press rescan to reload"

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	session    *sorter.Session
	watcher    *watch.Watcher

	// Widgets refreshed after every action
	counter     *widget.Label
	image       *canvas.Image
	viewer      *fyne.Container
	gif         *xwidget.AnimatedGif
	fileName    *widget.Label
	facts       *widget.Label
	status      *widget.Label
	modeSelect  *widget.Select
	slotButtons map[string]*widget.Button

	bgColor color.NRGBA
}

// NewApp creates a new GUI application. w may be nil.
func NewApp(cfg *config.Config, session *sorter.Session, w *watch.Watcher) *App {
	// Create app with a unique ID for preferences storage
	return newApp(app.NewWithID("io.github.imgsort"), cfg, session, w)
}

func newApp(fyneApp fyne.App, cfg *config.Config, session *sorter.Session, w *watch.Watcher) *App {
	if cfg == nil {
		cfg = config.New()
	}
	a := &App{
		fyneApp:     fyneApp,
		cfg:         cfg,
		session:     session,
		watcher:     w,
		slotButtons: make(map[string]*widget.Button),
		bgColor:     color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	}

	a.mainWindow = a.fyneApp.NewWindow("imgsort")
	a.mainWindow.Resize(fyne.NewSize(1100, 720))
	a.mainWindow.SetContent(a.buildContent())
	a.mainWindow.Canvas().SetOnTypedRune(a.typedRune)
	a.mainWindow.Canvas().SetOnTypedKey(a.typedKey)
	a.mainWindow.SetOnClosed(a.stopAnimation)
	a.refresh()
	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	a.startWatching()
	a.mainWindow.ShowAndRun()
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.LogWithError(err).Warn(title)
	a.status.SetText(title + ": " + err.Error())
	dialog.ShowError(err, a.mainWindow)
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}

// startWatching retargets the watcher and reports changes in the status line.
func (a *App) startWatching() {
	if a.watcher == nil || !a.cfg.Settings.WatchSource {
		return
	}
	a.retargetWatcher()
	go func() {
		for change := range a.watcher.Changes() {
			log.LogWithFields(log.F("file", change.Name), log.F("op", change.Op.String())).Debug("Source changed")
			fyne.Do(func() {
				a.status.SetText(changedNotice)
			})
		}
	}()
}

func (a *App) retargetWatcher() {
	if a.watcher == nil || !a.cfg.Settings.WatchSource {
		return
	}
	if err := a.watcher.SetDirectory(a.session.Directory()); err != nil {
		log.LogWithFields(log.F("error", err)).Warn("Could not watch source directory")
	}
}
