package shape

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

// recorder is a Driver keeping track of every operation it receives.
type recorder struct {
	ops    []string
	points map[string]Vertices // started and lined points, per drawer

	// fixed text metrics returned by MeasureText
	textWidth, textHeight float64
}

type recordDrawer struct {
	r    *recorder
	name string
}

func (d recordDrawer) log(format string, args ...interface{}) {
	d.r.ops = append(d.r.ops, d.name+" "+fmt.Sprintf(format, args...))
}

func (d recordDrawer) point(p fixed.Point26_6) {
	if d.r.points == nil {
		d.r.points = map[string]Vertices{}
	}
	d.r.points[d.name] = append(d.r.points[d.name], FromFixed(p))
}

func (d recordDrawer) Clear()                  { d.log("clear") }
func (d recordDrawer) Start(a fixed.Point26_6) { d.point(a); d.log("start %s", FromFixed(a)) }
func (d recordDrawer) Line(b fixed.Point26_6)  { d.point(b); d.log("line %s", FromFixed(b)) }
func (d recordDrawer) Stop(closeLoop bool) {
	if closeLoop {
		d.log("close")
	}
}
func (d recordDrawer) SetColor(c color.Color) { d.log("color %s", formatColor(c)) }
func (d recordDrawer) Draw()                  { d.log("draw") }
func (d recordDrawer) SetStrokeOptions(o StrokeOptions) {
	d.log("width %s", formatCoord(float64(o.LineWidth)/64))
}

func (r *recorder) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = recordDrawer{r, "fill"}
	}
	if willStroke {
		s = recordDrawer{r, "stroke"}
	}
	return f, s
}

func (r *recorder) MeasureText(Font, string) (float64, float64) {
	return r.textWidth, r.textHeight
}

func (r *recorder) DrawText(f Font, s string, at fixed.Point26_6, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("text %s %q %s %s", f, s, FromFixed(at), formatColor(c)))
}

// filter returns the operations starting with prefix
func (r *recorder) filter(prefix string) []string {
	var out []string
	for _, op := range r.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			out = append(out, op)
		}
	}
	return out
}

func assertVertices(t *testing.T, expected, got Vertices) {
	t.Helper()
	require.Len(t, got, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, got[i].X, 1e-9, "vertex %d", i)
		assert.InDelta(t, expected[i].Y, got[i].Y, 1e-9, "vertex %d", i)
	}
}

func TestRegularPolygons(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	for _, test := range []struct {
		shape    *Polygon
		kind     string
		expected Vertices
	}{
		{NewRectangle(40, 20), KindRectangle, Vertices{{-20, 10}, {20, 10}, {20, -10}, {-20, -10}}},
		{NewSquare(10), KindSquare, Vertices{{-5, 5}, {5, 5}, {5, -5}, {-5, -5}}},
		{NewDiamond(30, 50), KindDiamond, Vertices{{0, 25}, {-15, 0}, {0, -25}, {15, 0}}},
		{NewTriangle(Vertex{0, 0}, Vertex{10, 0}, Vertex{0, 10}), KindTriangle, Vertices{{0, 0}, {10, 0}, {0, 10}}},
		{NewEquilateral(60), KindEquilateral, Vertices{{0, 20 * sqrt3}, {-30, -10 * sqrt3}, {30, -10 * sqrt3}}},
		{NewPolygon([]Vertex{{1, 2}, {3, 4}}), KindPolygon, Vertices{{1, 2}, {3, 4}}},
	} {
		assert.Equal(t, test.kind, test.shape.Kind())
		assertVertices(t, test.expected, test.shape.Vertices())
	}
}

func TestEquilateralSides(t *testing.T) {
	vs := NewEquilateral(17).Vertices()
	for i := range vs {
		a, b := vs[i], vs[(i+1)%len(vs)]
		assert.InDelta(t, 17, math.Hypot(a.X-b.X, a.Y-b.Y), 1e-9)
	}
	// centroid on the origin
	assert.InDelta(t, 0, vs[0].Y+vs[1].Y+vs[2].Y, 1e-9)
}

func TestPolygonCopiesVertices(t *testing.T) {
	vs := []Vertex{{1, 1}, {2, 2}, {3, 1}}
	p := NewPolygon(vs)
	vs[0] = Vertex{100, 100}
	assert.Equal(t, Vertex{1, 1}, p.Vertices()[0])

	got := p.Vertices()
	got[1] = Vertex{-1, -1}
	assert.Equal(t, Vertex{2, 2}, p.Vertices()[1])
}

func TestEllipseVertices(t *testing.T) {
	e := NewEllipse(40, 20)
	vs := e.Vertices()
	require.Len(t, vs, ellipseSteps)
	assert.InDelta(t, 20, vs[0].X, 1e-9)
	assert.InDelta(t, 0, vs[0].Y, 1e-9)
	assert.InDelta(t, 10, vs[ellipseSteps/4].Y, 1e-9)
	assert.InDelta(t, -20, vs[ellipseSteps/2].X, 1e-9)

	c := NewCircle(8)
	assert.Equal(t, KindCircle, c.Kind())
	assert.Equal(t, Vertex{8, 8}, c.Dimension())
	for _, v := range c.Vertices() {
		assert.InDelta(t, 4, math.Hypot(v.X, v.Y), 1e-9)
	}
}

func TestDrawPolygon(t *testing.T) {
	r := new(recorder)
	NewSquare(10).Draw(r, Vertex{100, 50}, colornames.Blue, Border{})
	assert.Equal(t, []string{
		"fill clear",
		"fill start (95,55)",
		"fill line (105,55)",
		"fill line (105,45)",
		"fill line (95,45)",
		"fill close",
		"fill color 0x0000ff",
		"fill draw",
	}, r.ops)
}

func TestDrawSelectedPolygon(t *testing.T) {
	r := new(recorder)
	tri := NewTriangle(Vertex{0, 0}, Vertex{10.5, 0}, Vertex{0, 10.75})
	tri.Draw(r, Vertex{1, 1}, colornames.Blue, Border{Selected: true, Color: colornames.Green, Width: 3})

	strokes := r.filter("stroke")
	assert.Equal(t, []string{
		"stroke clear",
		"stroke width 3",
		"stroke start (1,1)",
		"stroke line (11,1)", // snapped to whole pixels
		"stroke line (1,11)",
		"stroke close",
		"stroke color 0x008000",
		"stroke draw",
	}, strokes)
	// filling happens first
	assert.Equal(t, "fill clear", r.ops[0])
}

func TestBorderDefaults(t *testing.T) {
	r := new(recorder)
	NewCircle(10).Draw(r, Vertex{}, nil, Border{Selected: true})
	assert.Empty(t, r.filter("fill"), "nil color disables filling")
	assert.Contains(t, r.ops, "stroke width 1")
	assert.Contains(t, r.ops, "stroke color 0xff0000")
}

func TestDrawEllipse(t *testing.T) {
	r := new(recorder)
	NewEllipse(20, 10).Draw(r, Vertex{50, 50}, colornames.White, Border{})
	assert.Equal(t, "fill start (60,50)", r.ops[1])
	assert.Len(t, r.filter("fill line"), ellipseSteps-1)
	assert.Empty(t, r.filter("stroke"))
}

// placed returns the vertices moved to center and truncated to whole pixels
func placed(vs Vertices, center Vertex) Vertices {
	out := make(Vertices, len(vs))
	for i, v := range vs {
		out[i] = v.Add(center).Trunc()
	}
	return out
}

func TestOutlineSnapsExactSum(t *testing.T) {
	border := Border{Selected: true}
	for _, test := range []struct {
		shape  *Polygon
		center Vertex
		first  Vertex
	}{
		// 1.1 + 100.9 reaches the next pixel only before quantization
		{NewDiamond(2, 2.2), Vertex{50, 100.9}, Vertex{50, 102}},
		{NewSquare(0.2), Vertex{0.9, 0.9}, Vertex{0, 1}},
	} {
		r := new(recorder)
		test.shape.Draw(r, test.center, nil, border)

		expected := placed(test.shape.Vertices(), test.center)
		assert.Equal(t, expected, r.points["stroke"], test.shape.String())
		assert.Equal(t, test.first, r.points["stroke"][0], test.shape.String())
	}
}

func TestDrawSelectedEllipse(t *testing.T) {
	r := new(recorder)
	e := NewEllipse(21, 11)
	center := Vertex{10.5, 10.5}
	e.Draw(r, center, colornames.White, Border{Selected: true})

	strokes := r.points["stroke"]
	require.Len(t, strokes, ellipseSteps)
	assert.Equal(t, placed(e.Vertices(), center), strokes)
	for _, v := range strokes {
		assert.Equal(t, v, v.Trunc(), "whole pixels")
	}
	assert.Len(t, r.filter("stroke start"), 1)
	assert.Len(t, r.filter("stroke line"), ellipseSteps-1)
	assert.Equal(t, []string{"stroke close"}, r.filter("stroke close"))
}

func TestPathString(t *testing.T) {
	p := polygonPath(NewDiamond(2, 4).Vertices())
	assert.Equal(t, "M0.000,2.000 L-1.000,0.000 L0.000,-2.000 L1.000,0.000 Z", p.String())
	assert.Empty(t, polygonPath(nil).String())
}

func TestSelectedTextWithoutMetrics(t *testing.T) {
	r := new(recorder) // measures 0 x 0, as an unknown font does
	NewText(Font(99), "lost").Draw(r, Vertex{5, 5}, colornames.White, Border{Selected: true})
	assert.Len(t, r.filter("text"), 1)
	assert.Empty(t, r.filter("stroke"), "no outline around nothing")
}

func TestDrawText(t *testing.T) {
	r := &recorder{textWidth: 60, textHeight: 12}
	txt := NewText(Helvetica12, "hello")
	txt.Draw(r, Vertex{10, 20}, colornames.Yellow, Border{})
	assert.Equal(t, []string{`text Helvetica-12 "hello" (10,20) 0xffff00`}, r.ops)

	r.ops = nil
	txt.Draw(r, Vertex{10, 20}, colornames.Yellow, Border{Selected: true, Width: 2})
	assert.Equal(t, []string{
		`text Helvetica-12 "hello" (10,20) 0xffff00`,
		"stroke clear",
		"stroke width 2",
		"stroke start (10,30)",
		"stroke line (70,30)",
		"stroke line (70,18)",
		"stroke line (10,18)",
		"stroke close",
		"stroke color 0xff0000",
		"stroke draw",
	}, r.ops)
}

var prefix = `^0x[0-9a-f]+->`

func TestShow(t *testing.T) {
	for _, test := range []struct {
		shape    Shape
		expected string
	}{
		{NewText(Fixed9x15, "a b"), `text: 0x2\(Fixed-9x15\) "a b"$`},
		{NewEllipse(3, 4.5), `ellipse: \{\(3,4.5\)\}$`},
		{NewCircle(7), `circle: \{\(7,7\)\}$`},
		{NewSquare(2), `square: \{\(-1,1\) \(1,1\) \(1,-1\) \(-1,-1\)\}$`},
		{NewDiamond(2, 4), `diamond: \{\(0,2\) \(-1,0\) \(0,-2\) \(1,0\)\}$`},
		{NewTriangle(Vertex{0, 0}, Vertex{1, 0}, Vertex{0, 1}), `triangle: \{\(0,0\) \(1,0\) \(0,1\)\}$`},
	} {
		assert.Regexp(t, regexp.MustCompile(prefix+test.expected), test.shape.String())
	}
}

func TestShowIdentity(t *testing.T) {
	a, b := NewCircle(1), NewCircle(1)
	assert.NotEqual(t, a.String(), b.String(), "distinct shapes have distinct identities")
	assert.Contains(t, a.String(), fmt.Sprintf("%p", a))
}
