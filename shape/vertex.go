package shape

import (
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Vertex is a point in window coordinates, with y growing upward.
type Vertex struct {
	X, Y float64
}

// Add returns the vertex translated by o.
func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{X: v.X + o.X, Y: v.Y + o.Y}
}

// Trunc returns the vertex with both coordinates truncated toward zero,
// which snaps outlines to whole pixels.
func (v Vertex) Trunc() Vertex {
	return Vertex{X: float64(int(v.X)), Y: float64(int(v.Y))}
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// String returns "(x,y)".
func (v Vertex) String() string {
	return "(" + formatCoord(v.X) + "," + formatCoord(v.Y) + ")"
}

// Fixed converts the vertex to a fixed point, as consumed by drivers.
func (v Vertex) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}

// FromFixed converts a fixed point back to a vertex.
func FromFixed(p fixed.Point26_6) Vertex {
	return Vertex{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Vertices is an ordered list of vertices.
type Vertices []Vertex

// String returns the vertices separated by spaces.
func (vs Vertices) String() string {
	chunks := make([]string, len(vs))
	for i, v := range vs {
		chunks[i] = v.String()
	}
	return strings.Join(chunks, " ")
}
