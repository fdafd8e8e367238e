package hoverbox

// Frame is the host's overlay surface primitive: a borderless window
// (or terminal region) the Manager moves, fills, and toggles. Creating
// the underlying surface belongs to the host; hoverbox only drives it.
type Frame interface {
	// SetText replaces the frame's displayed content with the cleaned,
	// presentation-annotated doc text.
	SetText(text string)

	// MoveResize positions the frame's top-left corner and sets its
	// outer size, both in screen coordinates.
	MoveResize(pos Point, size Size)

	// Show makes the frame visible.
	Show()

	// Hide removes the frame from view without destroying it, so the
	// next display request can reuse it.
	Hide()
}

// FrameFactory creates the host frame on first use. This is the only
// fallible operation in a display request.
type FrameFactory func() (Frame, error)
