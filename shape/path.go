package shape

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure shapes are reduced to.

// placement moves a shape relative path to its drawing center.
type placement struct {
	center Vertex
	snap   bool // truncate to whole pixels, for outlines
}

// apply places v in window coordinates. Snapping truncates the exact
// sum, before any conversion to fixed point.
func (pl placement) apply(v Vertex) fixed.Point26_6 {
	v = v.Add(pl.center)
	if pl.snap {
		v = v.Trunc()
	}
	return v.Fixed()
}

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`, after placing it with `pl`
	drawTo(d Drawer, pl placement)
}

// MoveTo and LineTo keep the shape relative coordinates
// unquantized; drivers receive fixed points once placed.
type MoveTo Vertex

type LineTo Vertex

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer, pl placement) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(pl.apply(Vertex(op)))
}

// draw a line
func (op LineTo) drawTo(d Drawer, pl placement) {
	d.Line(pl.apply(Vertex(op)))
}

func (op Close) drawTo(d Drawer, _ placement) {
	d.Stop(true)
}

// Path describes a sequence of basic operations, relative
// to the shape center.
type Path []Operation

// polygonPath returns the closed path through vs.
func polygonPath(vs []Vertex) Path {
	var p Path
	if len(vs) == 0 {
		return p
	}
	p.Start(vs[0])
	for _, v := range vs[1:] {
		p.Line(v)
	}
	p.Stop(true)
	return p
}

// String returns an SVG like representation of the path
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Vertex) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Vertex) {
	*p = append(*p, LineTo(b))
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// drawPath fills p with `fill` at center, then outlines it
// if the border is selected. A nil fill color disables filling.
func drawPath(d Driver, p Path, center Vertex, fill color.Color, b Border) {
	Debugf(DebugDraw, "path %s at %s", p, center)

	filler, stroker := d.SetupDrawers(fill != nil, b.Selected)
	if filler != nil {
		filler.Clear()
		pl := placement{center: center}
		for _, op := range p {
			op.drawTo(filler, pl)
		}
		filler.Stop(false)

		filler.SetColor(fill)
		filler.Draw()
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(b.strokeOptions())

		pl := placement{center: center, snap: true}
		for _, op := range p {
			op.drawTo(stroker, pl)
		}
		stroker.Stop(false)

		stroker.SetColor(b.color())
		stroker.Draw()
	}
}
