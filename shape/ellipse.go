package shape

import (
	"image/color"
	"io"
	"math"
)

// ellipseSteps is the number of vertices approximating an ellipse.
const ellipseSteps = 32

// Ellipse is an axis aligned ellipse, given by its bounding dimensions.
type Ellipse struct {
	dimension Vertex
	kind      string
}

// NewEllipse returns an ellipse `width` wide and `height` tall.
func NewEllipse(width, height float64) *Ellipse {
	e := &Ellipse{dimension: Vertex{width, height}, kind: KindEllipse}
	Debugf(DebugConstruct, "%s", e)
	return e
}

// NewCircle returns an ellipse with equal axes.
func NewCircle(diameter float64) *Ellipse {
	e := &Ellipse{dimension: Vertex{diameter, diameter}, kind: KindCircle}
	Debugf(DebugConstruct, "%s", e)
	return e
}

// Kind returns "ellipse" or "circle".
func (e *Ellipse) Kind() string { return e.kind }

// Dimension returns the width and height of the ellipse.
func (e *Ellipse) Dimension() Vertex { return e.dimension }

// Vertices returns the polygon approximating the ellipse,
// relative to its center.
func (e *Ellipse) Vertices() Vertices {
	vs := make(Vertices, ellipseSteps)
	for i := range vs {
		theta := 2 * math.Pi * float64(i) / ellipseSteps
		vs[i] = Vertex{
			X: e.dimension.X * math.Cos(theta) / 2,
			Y: e.dimension.Y * math.Sin(theta) / 2,
		}
	}
	return vs
}

func (e *Ellipse) Draw(d Driver, center Vertex, c color.Color, b Border) {
	Debugf(DebugDraw, "%s(%s,%s)", e, center, formatColor(c))
	drawPath(d, polygonPath(e.Vertices()), center, c, b)
}

// Show writes the dimension of the ellipse.
func (e *Ellipse) Show(w io.Writer) {
	showPrefix(w, e, e.kind)
	io.WriteString(w, "{"+e.dimension.String()+"}")
}

func (e *Ellipse) String() string { return describe(e) }
