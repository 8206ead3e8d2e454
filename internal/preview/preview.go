// Package preview gathers the facts shown beside the current image without
// decoding pixels.
package preview

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"imgsort/internal/classify"
	serr "imgsort/internal/errors"
	log "imgsort/internal/log"
	"imgsort/pkg/types"
)

var registerOnce sync.Once

// Describe returns stat facts and the sniffed MIME type for path, plus
// header dimensions for raster formats and EXIF capture details for JPEGs. Missing metadata is not an
// error; only an unreadable file is.
func Describe(path string) (*types.FileInfo, error) {
	registerOnce.Do(func() { exif.RegisterParsers(mknote.All...) })
	logger := log.LogWithFields(log.F("path", path))

	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to stat file", path, serr.FileNotFound, err)
		}
		return nil, serr.NewFileError("failed to stat file", path, serr.FileAccessDenied, err)
	}

	name := filepath.Base(path)
	category, _ := classify.Classify(name)
	info := &types.FileInfo{
		Path:     path,
		Kind:     kindOf(name, category),
		Size:     st.Size(),
		Modified: st.ModTime(),
	}
	if st.IsDir() {
		return info, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, serr.NewFileError("failed to open file", path, serr.FileAccessDenied, err)
	}
	defer file.Close()

	if mt, err := mimetype.DetectReader(file); err == nil {
		info.MIME = mt.String()
	}
	if !classify.IsNormal(name) && category != classify.Anim {
		return info, nil
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return info, nil
	}

	if cfg, _, err := image.DecodeConfig(file); err == nil {
		info.Width, info.Height = cfg.Width, cfg.Height
	} else {
		logger.Debugf("No dimensions for %s: %v", name, err)
	}

	ext := classify.Extension(name)
	if ext != "jpg" && ext != "jpeg" {
		return info, nil
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return info, nil
	}
	readExif(file, info, logger)
	return info, nil
}

func readExif(r io.Reader, info *types.FileInfo, logger *log.Logger) {
	x, err := exif.Decode(r)
	if err != nil {
		logger.Debugf("No EXIF data: %v", err)
		return
	}
	if dt, err := x.Get(exif.DateTimeOriginal); err == nil {
		if s, _ := dt.StringVal(); s != "" {
			info.Taken = s
		}
	}
	if model, err := x.Get(exif.Model); err == nil {
		if s, _ := model.StringVal(); s != "" {
			info.Camera = strings.TrimSpace(s)
		}
	}
}

// kindOf labels a file by extension and display category, e.g. "PNG still".
func kindOf(name string, c classify.Category) string {
	ext := strings.ToUpper(classify.Extension(name))
	if ext == "" {
		return c.String()
	}
	return ext + " " + c.String()
}
