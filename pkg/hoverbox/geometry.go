// Package hoverbox positions and sizes a floating documentation bubble
// (a "childframe") near the text cursor of a host editor surface. The
// host supplies the anchor point, the screen bounds, and the raw doc
// text; hoverbox cleans the text, fits it within configured maximum
// bounds, and computes where the bubble goes so it never overflows the
// visible area.
//
// Everything here is a synchronous, in-memory computation. There is no
// concurrency and no state beyond the single overlay handle owned by
// the Manager; a display request either replaces or reuses that handle,
// never races with another.
package hoverbox

// Point is a coordinate relative to the visible screen, in cells or
// pixels depending on the host.
type Point struct {
	X, Y int
}

// Size is a width/height pair in the same units as Point.
type Size struct {
	Width, Height int
}

// PlacementFunc computes the top-left corner for an overlay of the
// given size, anchored at the cursor location, within screen bounds.
// Implementations must be pure and must clamp rather than fail: the
// result always satisfies X >= 0 and Y >= 0.
//
// The Manager calls its placement through this single signature, so
// hosts can swap in any positioning policy.
type PlacementFunc func(anchor Point, size Size, screen Size) Point

// AtPoint returns the default placement: below and to the right of the
// anchor, flipping to above or left when the overlay would overflow the
// screen. lineHeight is the height of one text line, used to clear the
// anchor's own line when placing below.
func AtPoint(lineHeight int) PlacementFunc {
	return func(anchor Point, size Size, screen Size) Point {
		var p Point
		if anchor.X+size.Width > screen.Width {
			// Right edge of the overlay aligns with the anchor.
			p.X = max(0, anchor.X-size.Width)
		} else {
			p.X = anchor.X
		}
		if anchor.Y+size.Height > screen.Height {
			p.Y = max(0, anchor.Y-size.Height)
		} else {
			p.Y = anchor.Y + lineHeight
		}
		return p
	}
}

// TopRightCorner returns a placement that ignores the anchor and pins
// the overlay to the upper-right corner of the screen with the given
// margin.
func TopRightCorner(margin int) PlacementFunc {
	return func(_ Point, size Size, screen Size) Point {
		return Point{
			X: max(0, screen.Width-size.Width-margin),
			Y: max(0, margin),
		}
	}
}

// BottomLeftCorner returns a placement pinned to the lower-left corner
// of the screen with the given margin.
func BottomLeftCorner(margin int) PlacementFunc {
	return func(_ Point, size Size, screen Size) Point {
		return Point{
			X: max(0, margin),
			Y: max(0, screen.Height-size.Height-margin),
		}
	}
}
