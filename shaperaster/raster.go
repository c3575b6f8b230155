// Implements a raster backend to render shapes,
// by wrapping rasterx.
package shaperaster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/benoitkugler/shapes/shape"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ shape.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer draws shapes into an image.
// Shapes use window coordinates, with y growing upward:
// the bottom left pixel of the image is the origin.
type Renderer struct {
	dst    draw.Image
	bounds image.Rectangle

	filler filler // we use separated instances
	dasher dasher

	err error // first error met while drawing text
}

// NewRenderer returns a renderer drawing into `dst`.
// If scanner is nil, a default scanner rasterx.ScannerGV is used.
func NewRenderer(dst draw.Image, scanner rasterx.Scanner) *Renderer {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, dst, bounds)
	}
	rd := &Renderer{dst: dst, bounds: bounds}
	rd.filler = filler{Filler: rasterx.NewFiller(w, h, scanner), rd: rd}
	rd.dasher = dasher{Dasher: rasterx.NewDasher(w, h, scanner), rd: rd}
	return rd
}

// NewImage returns an image filled with `background`,
// and a renderer drawing on it.
func NewImage(width, height int, background color.Color) (*image.RGBA, *Renderer) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	return img, NewRenderer(img, nil)
}

// Err returns the first error met when drawing text.
func (rd *Renderer) Err() error { return rd.err }

// toImage converts from window coordinates to coordinates
// relative to the top left corner of the image
func (rd *Renderer) toImage(p fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: p.X, Y: fixed.I(rd.bounds.Dy()) - p.Y}
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f shape.Filler, s shape.Stroker) {
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.dasher
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
	rd *Renderer
}

func (f filler) Clear()                  { f.Filler.Clear() }
func (f filler) Start(a fixed.Point26_6) { f.Filler.Start(f.rd.toImage(a)) }
func (f filler) Line(b fixed.Point26_6)  { f.Filler.Line(f.rd.toImage(b)) }
func (f filler) Stop(closeLoop bool)     { f.Filler.Stop(closeLoop) }
func (f filler) SetColor(c color.Color)  { f.Filler.SetColor(c) }
func (f filler) Draw()                   { f.Filler.Draw() }

type dasher struct {
	*rasterx.Dasher
	rd *Renderer
}

func (d dasher) Clear()                  { d.Dasher.Clear() }
func (d dasher) Start(a fixed.Point26_6) { d.Dasher.Start(d.rd.toImage(a)) }
func (d dasher) Line(b fixed.Point26_6)  { d.Dasher.Line(d.rd.toImage(b)) }
func (d dasher) Stop(closeLoop bool)     { d.Dasher.Stop(closeLoop) }
func (d dasher) SetColor(c color.Color)  { d.Dasher.SetColor(c) }
func (d dasher) Draw()                   { d.Dasher.Draw() }

// outlines are smooth: round joins and caps
func (d dasher) SetStrokeOptions(options shape.StrokeOptions) {
	d.Dasher.SetStroke(
		options.LineWidth, fixed.I(4), rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0,
	)
}

func (rd *Renderer) face(f shape.Font) font.Face {
	face, err := Face(f)
	if err != nil {
		if rd.err == nil {
			rd.err = err
		}
		shape.Logger().Warn("text skipped", "font", f.String(), "error", err)
		return nil
	}
	return face
}

// MeasureText returns the advance of `s` and the line height of `f`.
// Unknown fonts measure zero.
func (rd *Renderer) MeasureText(f shape.Font, s string) (width, height float64) {
	face := rd.face(f)
	if face == nil {
		return 0, 0
	}
	advance := font.MeasureString(face, s)
	return float64(advance) / 64, float64(face.Metrics().Height) / 64
}

// DrawText draws `s` from its baseline origin `at`.
// A nil color draws nothing.
func (rd *Renderer) DrawText(f shape.Font, s string, at fixed.Point26_6, c color.Color) {
	face := rd.face(f)
	if face == nil || c == nil {
		return
	}
	shape.Debugf(shape.DebugDraw, "raster: text %q at %s", s, shape.FromFixed(at))
	d := font.Drawer{
		Dst:  rd.dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  rd.toImage(at).Add(fixed.P(rd.bounds.Min.X, rd.bounds.Min.Y)),
	}
	d.DrawString(s)
}
