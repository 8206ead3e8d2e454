// Package classify decides which filenames imgsort treats as images and how
// each one should be displayed.
package classify

import (
	"strings"

	"github.com/gobwas/glob"
)

// Category is the display strategy for an accepted file.
type Category int

const (
	// Rejected marks a name that is not an eligible image
	Rejected Category = iota
	// Still is a single-frame image
	Still
	// Anim is an animated image
	Anim
)

func (c Category) String() string {
	switch c {
	case Still:
		return "still"
	case Anim:
		return "anim"
	default:
		return "rejected"
	}
}

var (
	stillExts  = []string{"jpg", "jpeg", "bmp", "png", "webp", "svg"}
	animExts   = []string{"gif"}
	normalExts = []string{"jpg", "jpeg", "bmp", "png", "webp"}

	stillGlob  = compile(stillExts)
	animGlob   = compile(animExts)
	normalGlob = compile(normalExts)
)

func compile(exts []string) glob.Glob {
	return glob.MustCompile("*.{"+strings.Join(exts, ",")+"}", '/')
}

// Classify maps a filename to its category. A name is accepted only when it
// has exactly one "." and a recognized extension, compared case-insensitively.
func Classify(name string) (Category, bool) {
	if strings.Count(name, ".") != 1 {
		return Rejected, false
	}
	lower := strings.ToLower(name)
	switch {
	case stillGlob.Match(lower):
		return Still, true
	case animGlob.Match(lower):
		return Anim, true
	}
	return Rejected, false
}

// Accepted reports whether name would be kept in a source file set.
func Accepted(name string) bool {
	_, ok := Classify(name)
	return ok
}

// IsNormal reports whether name is a raster still whose header can be probed
// for dimensions (everything still except svg).
func IsNormal(name string) bool {
	if !Accepted(name) {
		return false
	}
	return normalGlob.Match(strings.ToLower(name))
}

// Extension returns the lowercased part after the single dot, or "".
func Extension(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// Recognized lists every accepted extension in display order.
func Recognized() []string {
	out := make([]string, 0, len(stillExts)+len(animExts))
	out = append(out, stillExts...)
	return append(out, animExts...)
}
