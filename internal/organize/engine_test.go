package organize_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"imgsort/internal/config"
	"imgsort/internal/errors"
	"imgsort/internal/organize"
	"imgsort/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRouteMove(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "c.gif")
	writeFile(t, src, "gif content")
	out := filepath.Join(tmpDir, "out")
	require.NoError(t, os.Mkdir(out, 0755))

	engine := organize.New()
	dest, err := engine.Route(src, out, types.Move)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "c.gif"), dest)

	_, err = os.Stat(src)
	assert.ErrorIs(t, err, os.ErrNotExist, "Source file should not exist after move")
	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "gif content", string(content))
}

func TestRouteCopy(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.jpg")
	writeFile(t, src, "jpg content")
	past := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(src, past, past))
	out := t.TempDir()

	dest, err := organize.New().Route(src, out, types.Copy)
	require.NoError(t, err)

	_, err = os.Stat(src)
	assert.NoError(t, err, "Copy keeps the original")
	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "Copy preserves modification time")
}

func TestRouteCollision(t *testing.T) {
	t.Run("fail strategy", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "a.jpg")
		writeFile(t, src, "new")
		out := t.TempDir()
		writeFile(t, filepath.Join(out, "a.jpg"), "old")

		for _, mode := range []types.Mode{types.Move, types.Copy} {
			_, err := organize.New().Route(src, out, mode)
			require.Error(t, err)
			assert.True(t, errors.IsFilesystemError(err))
			assert.ErrorIs(t, err, errors.ErrDestinationExist)
		}

		// both files untouched
		content, _ := os.ReadFile(filepath.Join(out, "a.jpg"))
		assert.Equal(t, "old", string(content))
		_, err := os.Stat(src)
		assert.NoError(t, err)
	})

	t.Run("rename strategy", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "a.jpg")
		writeFile(t, src, "new")
		out := t.TempDir()
		writeFile(t, filepath.Join(out, "a.jpg"), "old")
		writeFile(t, filepath.Join(out, "a_(1).jpg"), "older")

		cfg := config.New()
		cfg.Settings.Collision = config.CollisionRename
		dest, err := organize.NewWithConfig(cfg).Route(src, out, types.Move)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(out, "a_(2).jpg"), dest)
	})
}

func TestRouteTargetDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.jpg")
	writeFile(t, src, "x")
	missing := filepath.Join(tmpDir, "missing", "deeper")

	t.Run("missing target fails by default", func(t *testing.T) {
		_, err := organize.New().Route(src, missing, types.Move)
		require.Error(t, err)
		assert.True(t, errors.IsFileNotFound(err))
		_, statErr := os.Stat(src)
		assert.NoError(t, statErr)
	})

	t.Run("target that is a file", func(t *testing.T) {
		notDir := filepath.Join(tmpDir, "plain.txt")
		writeFile(t, notDir, "x")
		_, err := organize.New().Route(src, notDir, types.Copy)
		require.Error(t, err)
		assert.True(t, errors.IsFilesystemError(err))
	})

	t.Run("create_dirs creates it", func(t *testing.T) {
		cfg := config.New()
		cfg.Settings.CreateDirs = true
		dest, err := organize.NewWithConfig(cfg).Route(src, missing, types.Move)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(missing, "a.jpg"), dest)
	})
}

func TestMoveFileEdgeCases(t *testing.T) {
	engine := organize.New()

	t.Run("non-existent source", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := engine.MoveFile(filepath.Join(tmpDir, "nope.jpg"), filepath.Join(tmpDir, "dest.jpg"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.True(t, errors.IsFileNotFound(err))
	})

	t.Run("directory as source", func(t *testing.T) {
		tmpDir := t.TempDir()
		dir := filepath.Join(tmpDir, "x.jpg")
		require.NoError(t, os.Mkdir(dir, 0755))
		err := engine.MoveFile(dir, filepath.Join(t.TempDir(), "x.jpg"))
		require.Error(t, err)
		assert.True(t, errors.IsFilesystemError(err))
	})

	t.Run("destination exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "source.jpg")
		dest := filepath.Join(tmpDir, "dest.jpg")
		writeFile(t, src, "source")
		writeFile(t, dest, "dest")

		err := engine.MoveFile(src, dest)
		assert.ErrorIs(t, err, errors.ErrDestinationExist)
	})
}

func TestDeleteFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gone.png")
	writeFile(t, path, "x")

	engine := organize.New()
	require.NoError(t, engine.DeleteFile(path))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = engine.DeleteFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsFilesystemError(err))
}

func TestPermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("Skipping test when running as root")
	}

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.jpg")
	writeFile(t, src, "x")
	readOnly := filepath.Join(tmpDir, "ro")
	require.NoError(t, os.Mkdir(readOnly, 0555))
	defer os.Chmod(readOnly, 0755)

	_, err := organize.New().Route(src, readOnly, types.Copy)
	require.Error(t, err)
	assert.True(t, errors.IsFilesystemError(err))
	_, statErr := os.Stat(filepath.Join(readOnly, "a.jpg"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
