package hoverbox

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestAtPointBelowRight(t *testing.T) {
	place := AtPoint(1)
	p := place(Point{X: 10, Y: 5}, Size{Width: 20, Height: 4}, Size{Width: 100, Height: 40})
	assert.Equal(t, Point{X: 10, Y: 6}, p)
}

func TestAtPointFlipsLeftAtRightEdge(t *testing.T) {
	place := AtPoint(7)
	// 900+200 > 1000, so the right edge aligns with the anchor.
	// 100+50 <= 800, so the bubble sits one line below.
	p := place(Point{X: 900, Y: 100}, Size{Width: 200, Height: 50}, Size{Width: 1000, Height: 800})
	assert.Equal(t, Point{X: 700, Y: 107}, p)
}

func TestAtPointFlipsAboveAtBottomEdge(t *testing.T) {
	place := AtPoint(1)
	p := place(Point{X: 5, Y: 38}, Size{Width: 10, Height: 6}, Size{Width: 100, Height: 40})
	assert.Equal(t, Point{X: 5, Y: 32}, p)
}

func TestAtPointClampsWhenOverlayExceedsScreen(t *testing.T) {
	place := AtPoint(1)
	// Overlay is larger than the whole screen; clamp to origin rather
	// than going negative.
	p := place(Point{X: 3, Y: 39}, Size{Width: 200, Height: 100}, Size{Width: 100, Height: 40})
	assert.Equal(t, Point{X: 0, Y: 0}, p)
}

func TestAtPointDeterministic(t *testing.T) {
	place := AtPoint(1)
	anchor := Point{X: 42, Y: 17}
	size := Size{Width: 30, Height: 8}
	screen := Size{Width: 120, Height: 50}
	assert.Equal(t, place(anchor, size, screen), place(anchor, size, screen))
}

func TestAtPointNeverOverflows(t *testing.T) {
	place := AtPoint(1)
	screen := Size{Width: 80, Height: 24}
	for _, anchor := range []Point{{0, 0}, {79, 0}, {0, 23}, {79, 23}, {40, 12}, {70, 3}} {
		for _, size := range []Size{{1, 1}, {10, 5}, {80, 24}, {79, 23}} {
			p := place(anchor, size, screen)
			assert.GreaterOrEqual(t, p.X, 0)
			assert.GreaterOrEqual(t, p.Y, 0)
			assert.LessOrEqual(t, p.X+size.Width, max(screen.Width, size.Width),
				"anchor %+v size %+v", anchor, size)
		}
	}
}

func TestTopRightCorner(t *testing.T) {
	place := TopRightCorner(2)
	p := place(Point{X: 50, Y: 10}, Size{Width: 20, Height: 5}, Size{Width: 100, Height: 40})
	assert.Equal(t, Point{X: 78, Y: 2}, p)
}

func TestBottomLeftCorner(t *testing.T) {
	place := BottomLeftCorner(1)
	p := place(Point{X: 50, Y: 10}, Size{Width: 20, Height: 5}, Size{Width: 100, Height: 40})
	assert.Equal(t, Point{X: 1, Y: 34}, p)
}

func TestCornerClampsOversizedOverlay(t *testing.T) {
	place := TopRightCorner(0)
	p := place(Point{}, Size{Width: 200, Height: 5}, Size{Width: 100, Height: 40})
	assert.Equal(t, Point{X: 0, Y: 0}, p)
}

func TestFixedBound(t *testing.T) {
	assert.Equal(t, 60, FixedBound(60).Resolve())
}

func TestZeroBoundIsUnbounded(t *testing.T) {
	var b Bound
	assert.Equal(t, 0, b.Resolve())
}

func TestDynamicBoundReevaluated(t *testing.T) {
	n := 10
	b := DynamicBound(func() int { return n })
	assert.Equal(t, 10, b.Resolve())
	n = 25
	assert.Equal(t, 25, b.Resolve())
}

func TestMeasureTextEmpty(t *testing.T) {
	assert.Equal(t, Size{}, MeasureText(""))
}

func TestMeasureTextMultiline(t *testing.T) {
	got := MeasureText("short\na longer line\nmid")
	assert.Equal(t, Size{Width: 13, Height: 3}, got)
}

func TestMeasureTextIgnoresANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("bold")
	assert.Equal(t, Size{Width: 4, Height: 1}, MeasureText(styled))
}

func TestMeasureTextWideRunes(t *testing.T) {
	assert.Equal(t, Size{Width: 6, Height: 1}, MeasureText("日本語"))
}

func TestFitSizeClamps(t *testing.T) {
	got := FitSize(Size{Width: 120, Height: 30}, FixedBound(60), FixedBound(15))
	assert.Equal(t, Size{Width: 60, Height: 15}, got)
}

func TestFitSizeUnbounded(t *testing.T) {
	content := Size{Width: 120, Height: 30}
	assert.Equal(t, content, FitSize(content, Bound{}, Bound{}))
}

func TestFitSizeLeavesSmallerContent(t *testing.T) {
	content := Size{Width: 10, Height: 3}
	got := FitSize(content, FixedBound(60), FixedBound(15))
	assert.Equal(t, content, got)
}
