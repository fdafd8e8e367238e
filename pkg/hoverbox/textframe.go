package hoverbox

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// TextFrameOptions configures a TextFrame.
type TextFrameOptions struct {
	// Border draws a single-cell box around the content.
	Border bool

	// BorderStyle styles the border characters. The zero value renders
	// them unstyled.
	BorderStyle lipgloss.Style
}

// TextFrame is a Frame backed by a terminal cell grid. It renders the
// doc bubble as lines of text and composites them over the host's
// screen lines, splicing by visible column so ANSI-styled backdrops
// survive around the bubble.
type TextFrame struct {
	border      bool
	borderStyle lipgloss.Style

	lines   []string
	pos     Point
	size    Size
	visible bool
}

// NewTextFrame returns a hidden, empty TextFrame. opts may be nil.
func NewTextFrame(opts *TextFrameOptions) *TextFrame {
	if opts == nil {
		opts = &TextFrameOptions{}
	}
	return &TextFrame{
		border:      opts.Border,
		borderStyle: opts.BorderStyle,
	}
}

func (f *TextFrame) SetText(text string) {
	f.lines = strings.Split(text, "\n")
}

func (f *TextFrame) MoveResize(pos Point, size Size) {
	f.pos = pos
	f.size = size
}

func (f *TextFrame) Show() { f.visible = true }
func (f *TextFrame) Hide() { f.visible = false }

// Chrome reports the border cells added around the content.
func (f *TextFrame) Chrome() Size {
	if f.border {
		return Size{Width: 2, Height: 2}
	}
	return Size{}
}

// Composite overlays the frame onto the given screen lines and returns
// the result. The input is not modified. A hidden frame composites to
// an unchanged copy.
func (f *TextFrame) Composite(screen []string) []string {
	out := make([]string, len(screen))
	copy(out, screen)
	if !f.visible || f.size.Width <= 0 || f.size.Height <= 0 {
		return out
	}

	box := f.render()
	for len(out) < f.pos.Y+len(box) {
		out = append(out, "")
	}
	for i, line := range box {
		row := f.pos.Y + i
		out[row] = spliceLine(out[row], line, f.pos.X, f.size.Width)
	}
	return out
}

// render produces the frame's lines at exactly size.Width columns and
// size.Height rows, clipping and padding content as needed.
func (f *TextFrame) render() []string {
	chrome := f.Chrome()
	contentW := f.size.Width - chrome.Width
	contentH := f.size.Height - chrome.Height
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	content := make([]string, 0, contentH)
	for i := 0; i < contentH; i++ {
		var line string
		if i < len(f.lines) {
			line = ansi.Truncate(f.lines[i], contentW, "")
		}
		if pad := contentW - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		content = append(content, line)
	}

	if !f.border {
		return content
	}

	side := f.borderStyle.Render("│")
	top := f.borderStyle.Render("╭" + strings.Repeat("─", contentW) + "╮")
	bottom := f.borderStyle.Render("╰" + strings.Repeat("─", contentW) + "╯")

	box := make([]string, 0, contentH+2)
	box = append(box, top)
	for _, line := range content {
		box = append(box, side+line+side)
	}
	box = append(box, bottom)
	return box
}

// spliceLine overwrites w visible columns of base starting at col with
// overlay, which must already be exactly w columns wide.
func spliceLine(base, overlay string, col, w int) string {
	baseW := ansi.StringWidth(base)
	left := ansi.Truncate(base, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	var right string
	if baseW > col+w {
		right = ansi.Cut(base, col+w, baseW)
	}
	return left + overlay + right
}
