//go:build !nogui

package gui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"imgsort/internal/config"
	"imgsort/internal/organize"
	"imgsort/internal/sorter"
	"imgsort/internal/watch"
	"imgsort/pkg/testutils"
	"imgsort/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, names ...string) (*App, string) {
	t.Helper()
	src := testutils.SourceDir(t, names...)
	cfg := config.New()
	cfg.Settings.ConfirmDelete = false

	s := sorter.New(organize.New())
	require.NoError(t, s.SetSource(src))

	a := newApp(test.NewApp(), cfg, s, nil)
	t.Cleanup(a.mainWindow.Close)
	t.Cleanup(a.stopAnimation)
	return a, src
}

func TestNewApp(t *testing.T) {
	a, _ := newTestApp(t, "a.jpg", "b.png")
	require.NotNil(t, a.GetMainWindow())

	content, ok := a.GetMainWindow().Content().(*fyne.Container)
	require.True(t, ok, "Window content should be a *fyne.Container")
	assert.Len(t, content.Objects, 2, "background and layout")

	assert.Equal(t, "File 1 / 2", a.counter.Text)
	assert.Len(t, a.slotButtons, 15)
	assert.Equal(t, "Q: --None--", a.slotButtons["Q"].Text)
	assert.Equal(t, "Move", a.modeSelect.Selected)
	cur, _ := a.session.CurrentPath()
	assert.Equal(t, cur, a.image.File)
}

func TestGUIRouteByButtonAndKey(t *testing.T) {
	a, src := newTestApp(t, "a.jpg", "b.jpg")
	out := t.TempDir()
	a.assign("W", out)
	assert.Equal(t, "W: "+filepath.Base(out), a.slotButtons["W"].Text)

	first, _ := a.session.CurrentFile()
	test.Tap(a.slotButtons["W"])
	assert.Equal(t, "[W] Moved "+first+" → "+out, a.status.Text)
	_, err := os.Stat(filepath.Join(out, first))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(src, first))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "File 1 / 1", a.counter.Text)

	a.modeSelect.SetSelected("Copy")
	assert.Equal(t, types.Copy, a.session.Mode())

	second, _ := a.session.CurrentFile()
	test.TypeOnCanvas(a.mainWindow.Canvas(), "w")
	_, err = os.Stat(filepath.Join(src, second))
	assert.NoError(t, err, "copy keeps the original")
	assert.Equal(t, "File - / -", a.counter.Text)
	assert.Equal(t, "", a.image.File)
}

func TestGUIUnassignedReportsInStatus(t *testing.T) {
	a, _ := newTestApp(t, "a.jpg")
	test.Tap(a.slotButtons["E"])
	assert.Contains(t, a.status.Text, "E")
	assert.Equal(t, "File 1 / 1", a.counter.Text)
}

func TestGUINavigationAndDelete(t *testing.T) {
	a, src := newTestApp(t, "a.jpg", "b.jpg", "c.jpg")

	a.typedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, "File 3 / 3", a.counter.Text)
	a.typedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, "File 1 / 3", a.counter.Text)

	a.typedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	last, _ := a.session.CurrentFile()
	a.typedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	_, err := os.Stat(filepath.Join(src, last))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "File 2 / 2", a.counter.Text)
}

func TestGUIClearAndSource(t *testing.T) {
	a, _ := newTestApp(t, "a.jpg")
	a.assign("Z", t.TempDir())
	a.clearSlot("Z")
	assert.Equal(t, "Z: --None--", a.slotButtons["Z"].Text)

	other := testutils.SourceDir(t, "x.gif")
	a.setSource(other)
	assert.Equal(t, other, a.session.Directory())
	assert.Equal(t, "File 1 / 1", a.counter.Text)
	assert.Equal(t, "x.gif", a.fileName.Text)
}

func TestGUIPlaysAnimationsAndReleasesThem(t *testing.T) {
	a, src := newTestApp(t, "still.jpg")
	testutils.WriteGIF(t, filepath.Join(src, "moving.gif"), 3)
	require.NoError(t, a.session.Rescan())
	a.refresh()

	for i := 0; i < 2; i++ {
		if cur, _ := a.session.CurrentFile(); cur == "moving.gif" {
			break
		}
		a.typedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	}
	cur, _ := a.session.CurrentFile()
	require.Equal(t, "moving.gif", cur)

	require.NotNil(t, a.gif, "animations play in their own widget")
	assert.True(t, a.gif.Visible())
	assert.False(t, a.image.Visible())
	assert.Contains(t, a.viewer.Objects, fyne.CanvasObject(a.gif))

	out := t.TempDir()
	a.assign("A", out)
	a.route("A")
	_, err := os.Stat(filepath.Join(out, "moving.gif"))
	require.NoError(t, err)

	assert.Nil(t, a.gif, "animation released after moving on")
	assert.Len(t, a.viewer.Objects, 1)
	assert.True(t, a.image.Visible())
	assert.Equal(t, filepath.Join(src, "still.jpg"), a.image.File)
}

func TestGUIBrokenGIFFallsBackToStill(t *testing.T) {
	a, src := newTestApp(t, "fake.gif")
	assert.Nil(t, a.gif)
	assert.True(t, a.image.Visible())
	assert.Equal(t, filepath.Join(src, "fake.gif"), a.image.File)
}

func TestGUIEmptySourceShowsInfo(t *testing.T) {
	a, _ := newTestApp(t, "a.jpg")
	assert.Nil(t, a.mainWindow.Canvas().Overlays().Top())

	a.setSource(t.TempDir())
	assert.Equal(t, "File - / -", a.counter.Text)
	assert.NotNil(t, a.mainWindow.Canvas().Overlays().Top(), "information dialog shown")
}

func TestGUIWatcherNoticeOnMainLoop(t *testing.T) {
	src := testutils.SourceDir(t, "a.jpg")
	cfg := config.New()
	cfg.Settings.WatchSource = true

	s := sorter.New(organize.New())
	require.NoError(t, s.SetSource(src))
	w, err := watch.New()
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	a := newApp(test.NewApp(), cfg, s, w)
	t.Cleanup(a.mainWindow.Close)
	a.startWatching()

	testutils.WriteFiles(t, src, "b.png")
	assert.Eventually(t, func() bool {
		var text string
		fyne.DoAndWait(func() { text = a.status.Text })
		return text == changedNotice
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "File 1 / 1", a.counter.Text, "no implicit rescan")
}
