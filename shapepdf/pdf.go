// Implements a PDF backend to render shapes,
// by wrapping github.com/jung-kurt/gofpdf.
package shapepdf

import (
	"image/color"

	"github.com/benoitkugler/shapes/shape"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// assert interface conformance
var (
	_ shape.Driver  = (*Renderer)(nil)
	_ shape.Filler  = filler{}
	_ shape.Stroker = stroker{}
)

// Renderer draws shapes on the current page of a PDF document.
// One unit of the document is one pixel of the window coordinates,
// whose origin is the bottom left corner of the page.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the path commands,
// shared by the filler and the stroker
type pather struct {
	pdf    *gofpdf.Fpdf
	height float64 // page height, to flip y
}

// implements the filling operation
type filler struct {
	pather
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

// NewDocument returns a one page document, `width` by `height` points.
func NewDocument(width, height float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// Err returns the error recorded by the underlying document, if any.
func (rd *Renderer) Err() error { return rd.pdf.Error() }

func (rd *Renderer) newPather() pather {
	_, h := rd.pdf.GetPageSize()
	return pather{pdf: rd.pdf, height: h}
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f shape.Filler, s shape.Stroker) {
	if willFill {
		f = filler{rd.newPather()}
	}
	if willStroke {
		s = stroker{rd.newPather()}
	}
	return f, s
}

func (p pather) toPage(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, p.height - float64(a.Y)/64
}

func (p pather) Clear() {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(p.toPage(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(p.toPage(b))
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func rgb(c color.Color) (r, g, b int, alpha float64) {
	cr, cg, cb, ca := c.RGBA()
	if ca == 0 {
		return 0, 0, 0, 0
	}
	// un-premultiply
	return int(cr * 0xff / ca), int(cg * 0xff / ca), int(cb * 0xff / ca), float64(ca) / 0xffff
}

func (f filler) SetColor(c color.Color) {
	r, g, b, alpha := rgb(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(alpha, "Normal")
}

func (f filler) Draw() {
	f.pdf.DrawPath("F")
}

func (s stroker) SetColor(c color.Color) {
	r, g, b, alpha := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(alpha, "Normal")
}

func (s stroker) SetStrokeOptions(options shape.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineJoinStyle("round")
	s.pdf.SetLineCapStyle("round")
}

func (s stroker) Draw() {
	s.pdf.DrawPath("D")
}

// bitmap fonts are mapped to the standard PDF fonts,
// sized to their pixel height
var coreFonts = map[shape.Font]struct {
	family string
	size   float64
}{
	shape.Fixed8x13:    {"Courier", 13},
	shape.Fixed9x15:    {"Courier", 15},
	shape.Helvetica10:  {"Helvetica", 10},
	shape.Helvetica12:  {"Helvetica", 12},
	shape.Helvetica18:  {"Helvetica", 18},
	shape.TimesRoman10: {"Times", 10},
	shape.TimesRoman24: {"Times", 24},
}

// the standard fonts use the cp1252 encoding
var textEncoder = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

func encodeText(s string) string {
	out, err := textEncoder.String(s)
	if err != nil { // not expected with ReplaceUnsupported
		return s
	}
	return out
}

// setFont selects the font `f` and returns its size in points.
// Unknown fonts fall back to Helvetica 12.
func (rd *Renderer) setFont(f shape.Font) float64 {
	cf, ok := coreFonts[f]
	if !ok {
		shape.Logger().Warn("unknown font, using Helvetica", "font", f.String())
		cf = coreFonts[shape.Helvetica12]
	}
	rd.pdf.SetFont(cf.family, "", cf.size)
	return cf.size
}

func (rd *Renderer) MeasureText(f shape.Font, s string) (width, height float64) {
	size := rd.setFont(f)
	return rd.pdf.GetStringWidth(encodeText(s)), size
}

func (rd *Renderer) DrawText(f shape.Font, s string, at fixed.Point26_6, c color.Color) {
	if c == nil {
		return
	}
	shape.Debugf(shape.DebugDraw, "pdf: text %q at %s", s, shape.FromFixed(at))
	rd.setFont(f)
	r, g, b, alpha := rgb(c)
	rd.pdf.SetTextColor(r, g, b)
	rd.pdf.SetAlpha(alpha, "Normal")
	x, y := rd.newPather().toPage(at)
	rd.pdf.Text(x, y, encodeText(s))
}
