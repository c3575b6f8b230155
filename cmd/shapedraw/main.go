// Command shapedraw renders every kind of shape to a PNG image or a PDF
// document.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/benoitkugler/shapes/shape"
	"github.com/benoitkugler/shapes/shapepdf"
	"github.com/benoitkugler/shapes/shaperaster"
)

// ErrUnsupportedFormat is returned for output files which are neither .png nor .pdf.
var ErrUnsupportedFormat = errors.New("unsupported output format")

type colorMapper struct{}

func (colorMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var s string
	if err := ctx.Scan.PopValueInto("color", &s); err != nil {
		return err
	}

	c, err := shape.ParseColor(s)
	if err != nil {
		return err
	}
	target.Set(reflect.ValueOf(c))
	return nil
}

type options struct {
	Width      int        `short:"W" default:"640" help:"Width of the window, in pixels."`
	Height     int        `short:"H" default:"480" help:"Height of the window, in pixels."`
	Background color.RGBA `short:"b" default:"black" help:"Background color, by name or as 0xRRGGBB."`

	Selected    bool       `short:"s" help:"Draw every shape as selected."`
	BorderColor color.RGBA `default:"red" help:"Color of the selection outline."`
	BorderWidth float64    `default:"4" help:"Width of the selection outline, in pixels."`

	Show  bool   `help:"Print the description of every shape on stdout."`
	Debug string `short:"@" help:"Debug flags: c for construction, d for drawing, @ for all."`

	Output string `arg:"" type:"path" help:"Output file, ending in .png or .pdf."`
}

func newParser(flags *options) (*kong.Kong, error) {
	return kong.New(flags,
		kong.Description("Renders a gallery of shapes."),
		kong.TypeMapper(reflect.TypeOf(color.RGBA{}), colorMapper{}),
	)
}

// parse fills flags from the config file arguments followed by args,
// so that the command line has the last word.
func parse(parser *kong.Kong, args []string) error {
	cfgArgs, err := loadConfig()
	if err != nil {
		return err
	}

	_, err = parser.Parse(append(cfgArgs, args...))
	return err
}

func main() {
	var flags options
	parser, err := newParser(&flags)
	if err != nil {
		log.Fatalln(err)
	}
	parser.FatalIfErrorf(parse(parser, os.Args[1:]))

	if flags.Debug != "" {
		shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		shape.SetDebugFlags(flags.Debug)
	}

	if err := run(flags, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(flags options, stdout io.Writer) error {
	w, h := float64(flags.Width), float64(flags.Height)
	items := gallery(w, h)
	border := shape.Border{Selected: flags.Selected, Color: flags.BorderColor, Width: flags.BorderWidth}

	if flags.Show {
		for _, item := range items {
			fmt.Fprintln(stdout, item.shape)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(flags.Output)); ext {
	case ".png":
		img, rd := shaperaster.NewImage(flags.Width, flags.Height, flags.Background)
		for _, item := range items {
			item.shape.Draw(rd, item.center, item.color, border)
		}
		if err := rd.Err(); err != nil {
			return err
		}

		f, err := os.Create(flags.Output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}
		return f.Close()
	case ".pdf":
		pdf := shapepdf.NewDocument(w, h)
		rd := shapepdf.NewRenderer(pdf)
		// the background is a filled rectangle covering the page
		shape.NewRectangle(w, h).Draw(rd, shape.Vertex{X: w / 2, Y: h / 2}, flags.Background, shape.Border{})
		for _, item := range items {
			item.shape.Draw(rd, item.center, item.color, border)
		}
		if err := pdf.OutputFileAndClose(flags.Output); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
