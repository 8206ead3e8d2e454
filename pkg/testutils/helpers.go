// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// SourceDir creates a temporary directory holding one file per name. Each
// file's content is its own name.
func SourceDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFiles(t, dir, names...)
	return dir
}

// WriteFiles creates the named files in dir.
func WriteFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

// WritePNG encodes a w by h gray image at path.
func WritePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) * 16)})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// WriteGIF encodes an animated GIF with the given number of frames at path.
func WriteGIF(t *testing.T, path string, frames int) {
	t.Helper()
	anim := &gif.GIF{}
	for i := 0; i < frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), palette.Plan9)
		frame.SetColorIndex(i%4, i%4, uint8(i*40))
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 5)
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gif.EncodeAll(f, anim))
}

// StripANSI removes terminal escape sequences from rendered output.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
