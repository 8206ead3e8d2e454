//go:build !nogui

package gui

import (
	"fmt"
	"image/color"
	"path/filepath"

	"imgsort/internal/classify"
	"imgsort/internal/errors"
	"imgsort/internal/log"
	"imgsort/internal/preview"
	"imgsort/internal/shortcut"
	"imgsort/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"
)

// rowColors tint the three keyboard rows of shortcut buttons.
var rowColors = [3]color.NRGBA{
	{R: 216, G: 191, B: 216, A: 255}, // thistle
	{R: 144, G: 238, B: 144, A: 255}, // light green
	{R: 173, G: 216, B: 230, A: 255}, // light blue
}

func (a *App) buildContent() fyne.CanvasObject {
	changeSource := widget.NewButtonWithIcon("Change Source", theme.FolderOpenIcon(), a.chooseSource)
	prev := widget.NewButton("<<", func() {
		a.session.Prev()
		a.refresh()
	})
	next := widget.NewButton(">>", func() {
		a.session.Next()
		a.refresh()
	})
	a.counter = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	a.modeSelect = widget.NewSelect([]string{types.Move.String(), types.Copy.String()}, func(s string) {
		if mode, err := types.ParseMode(s); err == nil {
			a.session.SetMode(mode)
		}
	})
	a.modeSelect.SetSelected(a.session.Mode().String())

	deleteButton := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), a.requestDelete)
	deleteButton.Importance = widget.DangerImportance
	rescanButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.rescan)

	top := container.NewHBox(
		changeSource,
		layout.NewSpacer(),
		prev, a.counter, next,
		layout.NewSpacer(),
		a.modeSelect, deleteButton, rescanButton,
	)

	rows := container.NewVBox()
	for _, key := range shortcut.Keys() {
		rows.Add(a.slotRow(key))
	}

	a.image = canvas.NewImageFromResource(nil)
	a.image.FillMode = canvas.ImageFillContain
	a.image.SetMinSize(fyne.NewSize(480, 360))
	a.viewer = container.NewStack(a.image)
	a.fileName = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.facts = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	right := container.NewBorder(nil, container.NewVBox(a.fileName, a.facts), nil, nil, a.viewer)

	split := container.NewHSplit(container.NewVScroll(rows), right)
	split.Offset = 0.35

	a.status = widget.NewLabel("")
	background := canvas.NewRectangle(a.bgColor)
	return container.NewStack(background, container.NewBorder(top, a.status, nil, nil, split))
}

// slotRow is the send button, a change-target button and a clear button.
func (a *App) slotRow(key string) fyne.CanvasObject {
	send := widget.NewButton("", func() { a.route(key) })
	send.Importance = widget.LowImportance
	send.Alignment = widget.ButtonAlignLeading
	a.slotButtons[key] = send

	tint := canvas.NewRectangle(rowColors[shortcut.Row(key)])
	change := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() { a.chooseTarget(key) })
	clearButton := widget.NewButton("X", func() { a.clearSlot(key) })

	return container.NewBorder(nil, nil, nil, container.NewHBox(change, clearButton),
		container.NewStack(tint, send))
}

func (a *App) slotLabel(key string) string {
	slot, err := a.session.Shortcuts().Slot(key)
	if err != nil || !slot.Assigned() {
		return key + ": " + shortcut.Unassigned
	}
	return key + ": " + filepath.Base(slot.Target)
}

// refresh redraws everything derived from the session.
func (a *App) refresh() {
	a.counter.SetText(a.session.Counter())

	path, ok := a.session.CurrentPath()
	a.show(path)
	if ok {
		a.fileName.SetText(filepath.Base(path))
		if info, err := preview.Describe(path); err == nil {
			a.facts.SetText(info.Summary())
		} else {
			a.facts.SetText("")
		}
	} else {
		a.fileName.SetText("")
		a.facts.SetText("")
	}

	for key, button := range a.slotButtons {
		button.SetText(a.slotLabel(key))
	}
	if mode := a.session.Mode().String(); a.modeSelect.Selected != mode {
		a.modeSelect.SetSelected(mode)
	}
}

// show displays path, playing it when it is an animation. The previous
// animation is stopped and dropped first so only one file is held open.
func (a *App) show(path string) {
	a.stopAnimation()

	if category, ok := classify.Classify(filepath.Base(path)); ok && category == classify.Anim {
		gif, err := xwidget.NewAnimatedGif(storage.NewFileURI(path))
		if err == nil {
			a.gif = gif
			a.image.File = ""
			a.image.Hide()
			a.viewer.Add(gif)
			gif.Start()
			return
		}
		log.LogWithError(err).Debug("Animation unavailable, showing a still frame")
	}

	a.image.File = path
	a.image.Resource = nil
	a.image.Show()
	a.image.Refresh()
}

func (a *App) stopAnimation() {
	if a.gif == nil {
		return
	}
	a.gif.Stop()
	a.viewer.Remove(a.gif)
	a.gif = nil
}

// report shows precondition failures in the status line and everything
// else in an error dialog.
func (a *App) report(title string, err error) {
	if errors.IsNoCurrentFile(err) || errors.IsUnassignedTarget(err) || errors.IsUnknownKey(err) {
		a.status.SetText(err.Error())
		return
	}
	a.ShowError(title, err)
}

func (a *App) route(key string) {
	result, err := a.session.Execute(key)
	if err != nil {
		a.report("Could not sort file", err)
		return
	}
	a.status.SetText(result.String())
	a.refresh()
}

func (a *App) requestDelete() {
	name, ok := a.session.CurrentFile()
	if !ok {
		a.status.SetText("No current file")
		return
	}
	if !a.cfg.Settings.ConfirmDelete {
		a.deleteCurrent()
		return
	}
	dialog.ShowConfirm("Delete", fmt.Sprintf("Delete %s?", name), func(ok bool) {
		if ok {
			a.deleteCurrent()
		}
	}, a.mainWindow)
}

func (a *App) deleteCurrent() {
	result, err := a.session.Delete()
	if err != nil {
		a.report("Could not delete file", err)
		return
	}
	a.status.SetText(result.String())
	a.refresh()
}

func (a *App) rescan() {
	if err := a.session.Rescan(); err != nil {
		a.ShowError("Could not rescan", err)
		return
	}
	a.status.SetText("")
	a.refresh()
}

func (a *App) setSource(path string) {
	if err := a.session.SetSource(path); err != nil {
		a.ShowError("Could not open folder", err)
		return
	}
	a.retargetWatcher()
	a.status.SetText("Opened " + a.session.Directory())
	a.refresh()
	if _, total := a.session.Position(); total == 0 {
		a.ShowInfo(fmt.Sprintf("No images in %s", a.session.Directory()))
	}
}

func (a *App) assign(key, path string) {
	if err := a.session.Assign(key, path); err != nil {
		a.report("Could not set target", err)
		return
	}
	a.refresh()
}

func (a *App) clearSlot(key string) {
	if err := a.session.Clear(key); err != nil {
		a.report("Could not clear target", err)
		return
	}
	a.refresh()
}

func (a *App) chooseSource() {
	a.pickFolder(a.session.Directory(), a.setSource)
}

func (a *App) chooseTarget(key string) {
	start := a.session.Directory()
	if slot, err := a.session.Shortcuts().Slot(key); err == nil && slot.Assigned() {
		start = slot.Target
	}
	a.pickFolder(start, func(path string) { a.assign(key, path) })
}

// pickFolder opens a folder dialog; cancelling changes nothing.
func (a *App) pickFolder(start string, apply func(string)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			a.ShowError("Could not choose folder", err)
			return
		}
		if uri == nil {
			return
		}
		apply(uri.Path())
	}, a.mainWindow)

	if start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

func (a *App) typedRune(r rune) {
	key := string(r)
	if shortcut.IsKey(key) {
		a.route(key)
	}
}

func (a *App) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		a.session.Prev()
		a.refresh()
	case fyne.KeyRight:
		a.session.Next()
		a.refresh()
	case fyne.KeyDelete, fyne.KeyBackspace:
		a.requestDelete()
	}
}
