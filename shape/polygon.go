package shape

import (
	"image/color"
	"io"
	"math"
)

// Polygon is an ordered list of vertices, relative to the
// polygon center, drawn as a filled polygon.
// Regular shapes (rectangles, diamonds, triangles...) are
// polygons with precomputed vertices.
type Polygon struct {
	vertices Vertices
	kind     string
}

func newPolygon(vertices []Vertex, kind string) *Polygon {
	vs := make(Vertices, len(vertices))
	copy(vs, vertices)
	return &Polygon{vertices: vs, kind: kind}
}

// NewPolygon returns a polygon through the given vertices.
// The slice is copied.
func NewPolygon(vertices []Vertex) *Polygon {
	p := newPolygon(vertices, KindPolygon)
	Debugf(DebugConstruct, "%s", p)
	return p
}

func rectangleVertices(width, height float64) []Vertex {
	return []Vertex{
		{-width / 2, height / 2},
		{width / 2, height / 2},
		{width / 2, -height / 2},
		{-width / 2, -height / 2},
	}
}

// NewRectangle returns an axis aligned rectangle centered on the origin.
func NewRectangle(width, height float64) *Polygon {
	p := newPolygon(rectangleVertices(width, height), KindRectangle)
	Debugf(DebugConstruct, "%s(%s,%s)", p, formatCoord(width), formatCoord(height))
	return p
}

// NewSquare returns a rectangle with equal sides.
func NewSquare(width float64) *Polygon {
	p := newPolygon(rectangleVertices(width, width), KindSquare)
	Debugf(DebugConstruct, "%s(%s)", p, formatCoord(width))
	return p
}

// NewDiamond returns a rhombus whose diagonals are `width` and `height`,
// starting from its top vertex and going counter clockwise.
func NewDiamond(width, height float64) *Polygon {
	p := newPolygon([]Vertex{
		{0, height / 2},
		{-width / 2, 0},
		{0, -height / 2},
		{width / 2, 0},
	}, KindDiamond)
	Debugf(DebugConstruct, "%s(%s,%s)", p, formatCoord(width), formatCoord(height))
	return p
}

// NewTriangle returns the triangle a, b, c.
func NewTriangle(a, b, c Vertex) *Polygon {
	p := newPolygon([]Vertex{a, b, c}, KindTriangle)
	Debugf(DebugConstruct, "%s", p)
	return p
}

// NewEquilateral returns an equilateral triangle with sides of length `width`,
// pointing up, with its centroid on the origin.
func NewEquilateral(width float64) *Polygon {
	sqrt3 := math.Sqrt(3)
	p := newPolygon([]Vertex{
		{0, sqrt3 * width / 3},
		{-width / 2, -sqrt3 * width / 6},
		{width / 2, -sqrt3 * width / 6},
	}, KindEquilateral)
	Debugf(DebugConstruct, "%s(%s)", p, formatCoord(width))
	return p
}

// Kind returns the name of the polygon kind, such as "square".
func (p *Polygon) Kind() string { return p.kind }

// Vertices returns a copy of the vertices.
func (p *Polygon) Vertices() Vertices {
	out := make(Vertices, len(p.vertices))
	copy(out, p.vertices)
	return out
}

func (p *Polygon) Draw(d Driver, center Vertex, c color.Color, b Border) {
	Debugf(DebugDraw, "%s(%s,%s)", p, center, formatColor(c))
	drawPath(d, polygonPath(p.vertices), center, c, b)
}

// Show writes the vertex list.
func (p *Polygon) Show(w io.Writer) {
	showPrefix(w, p, p.kind)
	io.WriteString(w, "{"+p.vertices.String()+"}")
}

func (p *Polygon) String() string { return describe(p) }
