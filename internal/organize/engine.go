package organize

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"imgsort/internal/config"
	"imgsort/internal/errors"
	"imgsort/internal/log"
	"imgsort/pkg/types"
)

// Engine performs the filesystem side of sorting: routing a file into a
// target directory and deleting files.
type Engine struct {
	createDirs bool
	collision  string
}

// New creates an engine that fails on collisions and never creates directories.
func New() *Engine {
	return &Engine{collision: config.CollisionFail}
}

// NewWithConfig creates an engine from the settings section of cfg.
func NewWithConfig(cfg *config.Config) *Engine {
	e := New()
	e.SetConfig(cfg)
	return e
}

func (e *Engine) SetConfig(cfg *config.Config) {
	e.createDirs = cfg.Settings.CreateDirs
	if cfg.Settings.Collision != "" {
		e.collision = cfg.Settings.Collision
	}
}

// Route moves or copies src into targetDir under the same base name and
// returns the path actually written.
func (e *Engine) Route(src, targetDir string, mode types.Mode) (string, error) {
	if err := e.ensureTargetDir(targetDir); err != nil {
		return "", err
	}

	dest, err := e.handleCollision(filepath.Join(targetDir, filepath.Base(src)))
	if err != nil {
		return "", err
	}

	if mode == types.Copy {
		err = e.CopyFile(src, dest)
	} else {
		err = e.MoveFile(src, dest)
	}
	if err != nil {
		return "", err
	}
	return dest, nil
}

func (e *Engine) ensureTargetDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.NewFileError("target is not a directory", dir, errors.FileOperationFailed, nil)
		}
		return nil
	}
	if !os.IsNotExist(err) || !e.createDirs {
		return fsError("target directory unavailable", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fsError("failed to create target directory", dir, err)
	}
	log.LogWithFields(log.F("directory", dir)).Info("Created target directory")
	return nil
}

// handleCollision returns dest when it is free, a renamed sibling under the
// rename strategy, or a DestinationExists error.
func (e *Engine) handleCollision(dest string) (string, error) {
	_, err := os.Lstat(dest)
	if os.IsNotExist(err) {
		return dest, nil
	}
	if err != nil {
		return "", fsError("error checking destination", dest, err)
	}

	if e.collision == config.CollisionRename {
		return e.findUniqueDestName(dest)
	}
	log.LogWithFields(log.F("destination", dest)).Warn("Destination already exists")
	return "", errors.NewFileError("destination already exists", dest, errors.DestinationExists, nil)
}

// findUniqueDestName finds a free name by adding a counter to the basename
func (e *Engine) findUniqueDestName(originalPath string) (string, error) {
	ext := filepath.Ext(originalPath)
	base := strings.TrimSuffix(originalPath, ext)

	for counter := 1; counter <= 1000; counter++ {
		newName := fmt.Sprintf("%s_(%d)%s", base, counter, ext)
		if _, err := os.Lstat(newName); os.IsNotExist(err) {
			log.Info("Renaming destination to %s due to collision (strategy: rename)", newName)
			return newName, nil
		}
	}
	return "", errors.NewFileError("no free destination name after 1000 attempts", originalPath, errors.DestinationExists, nil)
}

// MoveFile renames src to dest, falling back to copy and remove across
// devices. dest must not exist.
func (e *Engine) MoveFile(src, dest string) error {
	if err := checkSource(src); err != nil {
		return err
	}
	if _, err := os.Lstat(dest); err == nil {
		return errors.NewFileError("destination already exists", dest, errors.DestinationExists, nil)
	}

	err := os.Rename(src, dest)
	if err == nil {
		log.Debug("Moved %s -> %s", src, dest)
		return nil
	}
	if !isCrossDevice(err) {
		return fsError("failed to move file", src, err)
	}

	log.Debug("Rename crossed devices, copying %s -> %s", src, dest)
	if err := e.CopyFile(src, dest); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		// undo the copy so the move either fully happened or did not
		_ = os.Remove(dest)
		return fsError("failed to remove source after copy", src, err)
	}
	return nil
}

// CopyFile writes a copy of src at dest, keeping mode and modification
// time. dest must not exist; a failed copy leaves nothing behind.
func (e *Engine) CopyFile(src, dest string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return fsError("source file error", src, err)
	}
	if info.IsDir() {
		return errors.NewFileError("cannot copy directory as file", src, errors.FileOperationFailed, nil)
	}

	in, err := os.Open(src)
	if err != nil {
		return fsError("failed to open source", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if os.IsExist(err) {
			return errors.NewFileError("destination already exists", dest, errors.DestinationExists, err)
		}
		return fsError("failed to create destination", dest, err)
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(dest)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fsError("failed to copy file", dest, err)
	}
	if err = out.Close(); err != nil {
		return fsError("failed to finish copy", dest, err)
	}
	if err := os.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
		log.LogWithFields(log.F("path", dest), log.F("error", err)).Debug("Could not preserve modification time")
	}
	log.Debug("Copied %s -> %s", src, dest)
	return nil
}

// DeleteFile removes path.
func (e *Engine) DeleteFile(path string) error {
	if err := checkSource(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fsError("failed to delete file", path, err)
	}
	log.Debug("Deleted %s", path)
	return nil
}

func checkSource(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fsError("source file error", path, err)
	}
	if info.IsDir() {
		return errors.NewFileError("cannot move directory as file", path, errors.FileOperationFailed, nil)
	}
	return nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if stderrors.As(err, &linkErr) {
		return stderrors.Is(linkErr.Err, syscall.EXDEV)
	}
	return false
}

// fsError maps an os error onto the matching filesystem kind.
func fsError(msg, path string, err error) error {
	kind := errors.FileOperationFailed
	switch {
	case os.IsNotExist(err):
		kind = errors.FileNotFound
	case os.IsPermission(err):
		kind = errors.FileAccessDenied
	}
	return errors.NewFileError(msg, path, kind, err)
}
