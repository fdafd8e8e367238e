package hoverbox

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// MeasureText returns the rendered size of text in cells: the widest
// line's visible width (ANSI escapes excluded, wide characters counted
// at their display width) by the number of lines. Empty text measures
// zero.
func MeasureText(text string) Size {
	if text == "" {
		return Size{}
	}
	lines := strings.Split(text, "\n")
	var w int
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return Size{Width: w, Height: len(lines)}
}

// FitSize clamps a measured content size to the given maximum bounds.
// Bounds are resolved once here; a bound resolving to <= 0 leaves that
// dimension unclamped.
func FitSize(content Size, maxWidth, maxHeight Bound) Size {
	out := content
	if w := maxWidth.Resolve(); w > 0 && out.Width > w {
		out.Width = w
	}
	if h := maxHeight.Resolve(); h > 0 && out.Height > h {
		out.Height = h
	}
	return out
}
