package types

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FileInfo represents the facts shown next to an image preview
type FileInfo struct {
	Path     string    `json:"path"`
	Kind     string    `json:"kind"`
	MIME     string    `json:"mime,omitempty"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Taken    string    `json:"taken,omitempty"`
	Camera   string    `json:"camera,omitempty"`
}

// Name returns the base name of the file
func (f *FileInfo) Name() string {
	return filepath.Base(f.Path)
}

// HumanSize returns the size as "1.2 MB"
func (f *FileInfo) HumanSize() string {
	return humanize.Bytes(uint64(f.Size))
}

// Dimensions returns "WxH", or "" when unknown
func (f *FileInfo) Dimensions() string {
	if f.Width == 0 || f.Height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

// ToJSON converts FileInfo to JSON string
func (f *FileInfo) ToJSON() string {
	jsonBytes, _ := json.Marshal(f)
	return string(jsonBytes)
}

// Summary is the one-line form used in status bars
func (f *FileInfo) Summary() string {
	parts := []string{f.Kind, f.HumanSize()}
	if d := f.Dimensions(); d != "" {
		parts = append(parts, d)
	}
	if f.Taken != "" {
		parts = append(parts, f.Taken)
	}
	if f.Camera != "" {
		parts = append(parts, f.Camera)
	}
	return strings.Join(parts, " · ")
}

// String returns a human-readable representation
func (f *FileInfo) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", f.Path))
	sb.WriteString(fmt.Sprintf("Kind: %s\n", f.Kind))
	if f.MIME != "" {
		sb.WriteString(fmt.Sprintf("MIME: %s\n", f.MIME))
	}
	sb.WriteString(fmt.Sprintf("Size: %s\n", f.HumanSize()))
	sb.WriteString(fmt.Sprintf("Modified: %s\n", humanize.Time(f.Modified)))
	if d := f.Dimensions(); d != "" {
		sb.WriteString(fmt.Sprintf("Dimensions: %s\n", d))
	}
	if f.Taken != "" {
		sb.WriteString(fmt.Sprintf("Taken: %s\n", f.Taken))
	}
	if f.Camera != "" {
		sb.WriteString(fmt.Sprintf("Camera: %s\n", f.Camera))
	}
	return sb.String()
}
