package shape

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any shape knowledge.
// Points are given in window coordinates (origin at the bottom left,
// y growing upward), already translated to the shape center.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color for the current path
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path
	Draw()
}

// Filler paints the inside of closed paths.
type Filler interface {
	Drawer
}

// Stroker paints the outline of paths.
type Stroker interface {
	Drawer

	// SetStrokeOptions parametrizes the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

// StrokeOptions controls how outlines are painted.
type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
}

// TextDrawer renders strings in one of the bitmap fonts.
type TextDrawer interface {
	// MeasureText returns the advance width of s and the line height of f,
	// in pixels.
	MeasureText(f Font, s string) (width, height float64)

	// DrawText draws s with its baseline origin at `at`.
	DrawText(f Font, s string, at fixed.Point26_6, c color.Color)
}

// Driver is the graphics context shapes are drawn into.
type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the beginning of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, the exact same path is sent
	// to the Filler first, and then to the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)

	TextDrawer
}

// Border is the outline drawn around a shape when it is selected.
// The selection state itself is owned by the caller.
type Border struct {
	Selected bool
	Color    color.Color // DefaultBorderColor if nil
	Width    float64     // 1 if zero or negative
}

func (b Border) color() color.Color {
	if b.Color == nil {
		return DefaultBorderColor
	}
	return b.Color
}

func (b Border) width() float64 {
	if b.Width <= 0 {
		return 1
	}
	return b.Width
}

func (b Border) strokeOptions() StrokeOptions {
	return StrokeOptions{LineWidth: fixed.Int26_6(b.width() * 64)}
}
