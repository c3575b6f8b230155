package main

import (
	"image/color"

	"github.com/benoitkugler/shapes/shape"
	"golang.org/x/image/colornames"
)

type placed struct {
	shape  shape.Shape
	center shape.Vertex
	color  color.Color
}

// gallery lays out one shape of every kind on a 4 x 3 grid
// filling a `width` x `height` window.
func gallery(width, height float64) []placed {
	cellW, cellH := width/4, height/3
	size := cellW
	if cellH < size {
		size = cellH
	}
	size *= 0.6

	items := []struct {
		shape shape.Shape
		color color.Color
	}{
		{shape.NewEllipse(size, size/2), colornames.Orange},
		{shape.NewCircle(size), colornames.Gold},
		{shape.NewRectangle(size, size/2), colornames.Steelblue},
		{shape.NewSquare(size), colornames.Forestgreen},
		{shape.NewDiamond(size/2, size), colornames.Orchid},
		{shape.NewTriangle(shape.Vertex{X: -size / 2, Y: -size / 2}, shape.Vertex{X: size / 2, Y: -size / 2}, shape.Vertex{X: -size / 2, Y: size / 2}), colornames.Tomato},
		{shape.NewEquilateral(size), colornames.Turquoise},
		{shape.NewPolygon([]shape.Vertex{
			{X: 0, Y: size / 2}, {X: size / 2, Y: 0}, {X: size / 4, Y: -size / 2},
			{X: -size / 4, Y: -size / 2}, {X: -size / 2, Y: 0},
		}), colornames.Wheat},
	}

	var out []placed
	for i, item := range items {
		col, row := i%4, i/4
		out = append(out, placed{
			shape:  item.shape,
			center: shape.Vertex{X: cellW * (float64(col) + 0.5), Y: height - cellH*(float64(row)+0.5)},
			color:  item.color,
		})
	}

	// the last row shows the fonts, left aligned
	fonts := shape.Fonts()
	step := cellH / float64(len(fonts))
	for i, f := range fonts {
		out = append(out, placed{
			shape:  shape.NewText(f, f.String()),
			center: shape.Vertex{X: cellW / 4, Y: cellH - step*float64(i+1) + step/4},
			color:  colornames.White,
		})
	}
	return out
}
