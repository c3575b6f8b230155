package shape

import (
	"fmt"
	"image/color"
	"io"
)

// Text is a string rendered in a bitmap font.
type Text struct {
	font Font
	data string
}

// NewText returns a text shape drawing `data` with the font `f`.
func NewText(f Font, data string) *Text {
	t := &Text{font: f, data: data}
	Debugf(DebugConstruct, "%s", t)
	return t
}

// Font returns the font handle of the text.
func (t *Text) Font() Font { return t.font }

// Data returns the drawn string.
func (t *Text) Data() string { return t.data }

// Draw places the baseline origin of the text at `center`.
// When selected, the outline encloses the rendered string.
func (t *Text) Draw(d Driver, center Vertex, c color.Color, b Border) {
	Debugf(DebugDraw, "%s(%s,%s)", t, center, formatColor(c))

	d.DrawText(t.font, t.data, center.Fixed(), c)

	if !b.Selected {
		return
	}
	w, h := d.MeasureText(t.font, t.data)
	if w == 0 && h == 0 { // nothing rendered, such as an unknown font
		return
	}
	box := polygonPath([]Vertex{
		{-w / 2, h / 2},
		{w / 2, h / 2},
		{w / 2, -h / 2},
		{-w / 2, -h / 2},
	})
	// the box is centered on the string, which starts at `center`
	// and sits above its baseline
	drawPath(d, box, center.Add(Vertex{w / 2, h / 3}), nil, b)
}

// Show writes the font handle, its name and the quoted text.
func (t *Text) Show(w io.Writer) {
	showPrefix(w, t, KindText)
	fmt.Fprintf(w, "%#x(%s) \"%s\"", uint8(t.font), t.font, t.data)
}

func (t *Text) String() string { return describe(t) }
