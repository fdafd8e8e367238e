package hoverbox

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"

	"github.com/vito/hoverbox/pkg/doctext"
)

// ManagerOptions configures a Manager. The zero value (or nil) gives
// at-point placement, the default cleanup pipeline, unstyled text, no
// size bounds, and a line height of one cell.
type ManagerOptions struct {
	// Placement computes the bubble's top-left corner. Defaults to
	// AtPoint(LineHeight).
	Placement PlacementFunc

	// Normalizer cleans raw doc text before display. Defaults to
	// doctext.Default().
	Normalizer *doctext.Normalizer

	// Styles are the presentation annotations handed to the normalizer.
	Styles doctext.Styles

	// MaxWidth and MaxHeight cap the bubble's content size. Each is
	// resolved once per display request.
	MaxWidth  Bound
	MaxHeight Bound

	// LineHeight is the height of one text line at the anchor, used by
	// the default placement to clear the cursor's line. Defaults to 1.
	LineHeight int
}

// Manager owns the single overlay frame. It acquires the frame from
// its factory on first use, reuses it on every later request, and
// hides it on Dismiss. At most one bubble exists at a time.
//
// A Manager is not safe for concurrent use; display requests come from
// the host's UI loop one at a time.
type Manager struct {
	newFrame   FrameFactory
	place      PlacementFunc
	normalizer *doctext.Normalizer
	styles     doctext.Styles
	maxWidth   Bound
	maxHeight  Bound
	lineHeight int

	frame   Frame
	visible bool
}

// NewManager returns a Manager that drives frames from the given
// factory. opts may be nil.
func NewManager(newFrame FrameFactory, opts *ManagerOptions) *Manager {
	if opts == nil {
		opts = &ManagerOptions{}
	}
	m := &Manager{
		newFrame:   newFrame,
		place:      opts.Placement,
		normalizer: opts.Normalizer,
		styles:     opts.Styles,
		maxWidth:   opts.MaxWidth,
		maxHeight:  opts.MaxHeight,
		lineHeight: opts.LineHeight,
	}
	if m.lineHeight <= 0 {
		m.lineHeight = 1
	}
	if m.place == nil {
		m.place = AtPoint(m.lineHeight)
	}
	if m.normalizer == nil {
		m.normalizer = doctext.Default()
	}
	return m
}

// Show runs one display request: clean the raw text, measure it, fit
// it within the configured bounds, place it relative to the anchor,
// and make the frame visible. Text that cleans down to nothing
// dismisses any visible bubble instead.
//
// The only error path is frame acquisition on first use; everything
// after that clamps rather than fails.
func (m *Manager) Show(text string, anchor Point, screen Size) error {
	maxW := m.maxWidth.Resolve()
	maxH := m.maxHeight.Resolve()

	env := doctext.Env{Width: maxW, Styles: m.styles}
	cleaned := m.normalizer.Normalize(env, text)
	if strings.TrimSpace(ansi.Strip(cleaned)) == "" {
		m.Dismiss()
		return nil
	}

	if m.frame == nil {
		frame, err := m.newFrame()
		if err != nil {
			return errors.Wrap(err, "acquire overlay frame")
		}
		m.frame = frame
	}

	size := FitSize(MeasureText(cleaned), FixedBound(maxW), FixedBound(maxH))
	if c, ok := m.frame.(ChromedFrame); ok {
		chrome := c.Chrome()
		size.Width += chrome.Width
		size.Height += chrome.Height
	}
	pos := m.place(anchor, size, screen)

	m.frame.SetText(cleaned)
	m.frame.MoveResize(pos, size)
	m.frame.Show()
	m.visible = true

	slog.Debug("doc bubble shown",
		"anchor_x", anchor.X, "anchor_y", anchor.Y,
		"x", pos.X, "y", pos.Y,
		"width", size.Width, "height", size.Height)
	return nil
}

// Dismiss hides the bubble. The frame is kept for reuse by the next
// request.
func (m *Manager) Dismiss() {
	if m.frame != nil && m.visible {
		m.frame.Hide()
	}
	m.visible = false
}

// Visible reports whether a bubble is currently shown.
func (m *Manager) Visible() bool {
	return m.visible
}

// ChromedFrame is implemented by frames that draw chrome (borders,
// padding) outside their content area. Chrome reports the total extra
// cells per axis so placement accounts for the full outer size.
type ChromedFrame interface {
	Frame
	Chrome() Size
}
