// Provides the drawable shapes of a vector graphics editor:
// text labels, ellipses, circles and polygons, with the regular
// polygons derived from them.
// Shapes are reduced to paths, which are then consumed by painting
// drivers, such as shapes/shaperaster or shapes/shapepdf.
package shape

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// Shape is a drawable object, positioned relative to the center
// it is drawn at.
type Shape interface {
	// Draw renders the shape at `center` with the color `c`,
	// and outlines it when the border is selected.
	Draw(d Driver, center Vertex, c color.Color, b Border)

	// Show writes a human readable description of the shape.
	Show(w io.Writer)

	fmt.Stringer
}

// assert interface conformance
var (
	_ Shape = (*Text)(nil)
	_ Shape = (*Ellipse)(nil)
	_ Shape = (*Polygon)(nil)
)

// Shape kinds, as reported in descriptions.
const (
	KindText        = "text"
	KindEllipse     = "ellipse"
	KindCircle      = "circle"
	KindPolygon     = "polygon"
	KindRectangle   = "rectangle"
	KindSquare      = "square"
	KindDiamond     = "diamond"
	KindTriangle    = "triangle"
	KindEquilateral = "equilateral"
)

// showPrefix writes the part of the description common to all shapes:
// the identity of the object and its kind.
func showPrefix(w io.Writer, s Shape, kind string) {
	fmt.Fprintf(w, "%p->%s: ", s, kind)
}

func describe(s Shape) string {
	var b strings.Builder
	s.Show(&b)
	return b.String()
}
