package sorter_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"imgsort/internal/config"
	"imgsort/internal/errors"
	"imgsort/internal/organize"
	"imgsort/internal/sorter"
	"imgsort/pkg/testutils"
	"imgsort/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingOps refuses every filesystem effect.
type failingOps struct {
	routed  int
	deleted int
}

func (f *failingOps) SetConfig(cfg *config.Config) {}

func (f *failingOps) Route(src, targetDir string, mode types.Mode) (string, error) {
	f.routed++
	return "", errors.NewFileError("failed to move file", src, errors.FileAccessDenied, fmt.Errorf("permission denied"))
}

func (f *failingOps) DeleteFile(path string) error {
	f.deleted++
	return errors.NewFileError("failed to delete file", path, errors.FileAccessDenied, fmt.Errorf("permission denied"))
}

// seek advances until name is current.
func seek(t *testing.T, s *sorter.Session, name string) {
	t.Helper()
	_, total := s.Position()
	for i := 0; i < total; i++ {
		if cur, _ := s.CurrentFile(); cur == name {
			return
		}
		s.Next()
	}
	t.Fatalf("%s not in session", name)
}

func TestEndToEndMove(t *testing.T) {
	src := testutils.SourceDir(t, "a.jpg", "b.txt", "c.gif")
	out := t.TempDir()

	s := sorter.New(organize.New())
	require.NoError(t, s.SetSource(src))
	assert.ElementsMatch(t, []string{"a.jpg", "c.gif"}, s.Files())
	cur, total := s.Position()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 2, total)

	seek(t, s, "c.gif")

	require.NoError(t, s.Assign("Q", out))
	s.SetMode(types.Move)
	result, err := s.Execute("Q")
	require.NoError(t, err)
	assert.Equal(t, types.MoveAction, result.Action)
	assert.Equal(t, filepath.Join(out, "c.gif"), result.Destination)

	_, err = os.Stat(filepath.Join(out, "c.gif"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(src, "c.gif"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, []string{"a.jpg"}, s.Files())
	cur, total = s.Position()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 1, total)
	name, ok := s.CurrentFile()
	require.True(t, ok)
	assert.Equal(t, "a.jpg", name)
}

func TestCopyAlsoRemovesFromSet(t *testing.T) {
	src := testutils.SourceDir(t, "a.jpg", "b.png")
	out := t.TempDir()

	s := sorter.New(organize.New())
	require.NoError(t, s.SetSource(src))
	require.NoError(t, s.Assign("w", out))
	s.SetMode(types.Copy)

	first, _ := s.CurrentFile()
	result, err := s.Execute("W")
	require.NoError(t, err)
	assert.Equal(t, types.CopyAction, result.Action)

	_, err = os.Stat(filepath.Join(src, first))
	assert.NoError(t, err, "copy leaves the original")
	_, err = os.Stat(filepath.Join(out, first))
	assert.NoError(t, err)

	assert.NotContains(t, s.Files(), first)
	_, total := s.Position()
	assert.Equal(t, 1, total)
}

func TestExecutePreconditions(t *testing.T) {
	t.Run("unassigned target leaves state unchanged", func(t *testing.T) {
		src := testutils.SourceDir(t, "a.jpg", "b.jpg", "c.jpg")
		s := sorter.New(organize.New())
		require.NoError(t, s.SetSource(src))
		s.Next()
		before := s.Files()
		cur, total := s.Position()

		_, err := s.Execute("E")
		require.Error(t, err)
		assert.True(t, errors.IsUnassignedTarget(err))

		assert.Equal(t, before, s.Files())
		c2, t2 := s.Position()
		assert.Equal(t, cur, c2)
		assert.Equal(t, total, t2)
	})

	t.Run("no current file", func(t *testing.T) {
		s := sorter.New(organize.New())
		require.NoError(t, s.Assign("Q", t.TempDir()))
		_, err := s.Execute("Q")
		assert.True(t, errors.IsNoCurrentFile(err))

		_, err = s.Delete()
		assert.True(t, errors.IsNoCurrentFile(err))
	})

	t.Run("unknown key", func(t *testing.T) {
		src := testutils.SourceDir(t, "a.jpg")
		s := sorter.New(organize.New())
		require.NoError(t, s.SetSource(src))
		_, err := s.Execute("P")
		assert.True(t, errors.IsUnknownKey(err))
	})
}

func TestFilesystemFailureLeavesStateUnchanged(t *testing.T) {
	src := testutils.SourceDir(t, "a.jpg", "b.jpg")
	ops := &failingOps{}
	s := sorter.New(ops)
	require.NoError(t, s.SetSource(src))
	require.NoError(t, s.Assign("Q", t.TempDir()))
	before := s.Files()

	_, err := s.Execute("Q")
	assert.True(t, errors.IsFilesystemError(err))
	_, err = s.Delete()
	assert.True(t, errors.IsFilesystemError(err))

	assert.Equal(t, 1, ops.routed)
	assert.Equal(t, 1, ops.deleted)
	assert.Equal(t, before, s.Files())
	cur, total := s.Position()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 2, total)
}

func TestCollisionIsFilesystemError(t *testing.T) {
	src := testutils.SourceDir(t, "a.jpg")
	out := testutils.SourceDir(t, "a.jpg")

	s := sorter.New(organize.New())
	require.NoError(t, s.SetSource(src))
	require.NoError(t, s.Assign("Z", out))

	_, err := s.Execute("Z")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDestinationExist)
	assert.Equal(t, []string{"a.jpg"}, s.Files())
}

func TestDeleteHoldsPosition(t *testing.T) {
	src := testutils.SourceDir(t, "a.jpg", "b.jpg", "c.jpg")
	s := sorter.New(organize.New())
	require.NoError(t, s.SetSource(src))
	entries := s.Files()

	// delete the last entry: position wraps to the new last
	s.Prev()
	last, _ := s.CurrentFile()
	assert.Equal(t, entries[2], last)

	result, err := s.Delete()
	require.NoError(t, err)
	assert.Equal(t, types.DeleteAction, result.Action)
	_, err = os.Stat(filepath.Join(src, last))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cur, total := s.Position()
	assert.Equal(t, 2, cur)
	assert.Equal(t, 2, total)
	now, _ := s.CurrentFile()
	assert.Equal(t, entries[1], now)

	// delete a middle entry: the next one slides into place
	s.Prev()
	_, err = s.Delete()
	require.NoError(t, err)
	now, _ = s.CurrentFile()
	assert.Equal(t, entries[1], now)

	_, err = s.Delete()
	require.NoError(t, err)
	cur, total = s.Position()
	assert.Equal(t, 0, cur)
	assert.Equal(t, 0, total)
	_, ok := s.CurrentFile()
	assert.False(t, ok)
}

func TestSetSource(t *testing.T) {
	s := sorter.New(organize.New())
	assert.Equal(t, "File - / -", s.Counter())

	src := testutils.SourceDir(t, "a.jpg", "b.jpg")
	require.NoError(t, s.SetSource(src))
	s.Next()

	t.Run("empty path is no change", func(t *testing.T) {
		require.NoError(t, s.SetSource(""))
		assert.Equal(t, src, s.Directory())
		cur, _ := s.Position()
		assert.Equal(t, 2, cur)
	})

	t.Run("unreadable path keeps state", func(t *testing.T) {
		err := s.SetSource(filepath.Join(src, "nope"))
		assert.True(t, errors.IsDirectoryError(err))
		assert.Equal(t, src, s.Directory())
		cur, _ := s.Position()
		assert.Equal(t, 2, cur)
	})

	t.Run("rescan resets", func(t *testing.T) {
		testutils.WriteFiles(t, src, "c.jpg")
		require.NoError(t, s.Rescan())
		assert.Equal(t, "File 1 / 3", s.Counter())
	})
}

func TestNewWithConfig(t *testing.T) {
	src := testutils.SourceDir(t, "a.jpg")
	keep := t.TempDir()

	cfg := config.New()
	cfg.Settings.DefaultMode = "copy"
	cfg.Directories.Source = src
	cfg.Shortcuts["A"] = keep

	s, err := sorter.NewWithConfig(cfg, organize.NewWithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, types.Copy, s.Mode())
	assert.Equal(t, keep, s.Shortcuts().Label("A"))
	assert.Equal(t, src, s.Directory())
	assert.Equal(t, "File 1 / 1", s.Counter())

	assert.Equal(t, types.Move, s.ToggleMode())
	require.NoError(t, s.Clear("A"))
	assert.False(t, s.Shortcuts().Slots()[5].Assigned())
}
