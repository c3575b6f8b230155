package shaperaster

import (
	"fmt"
	"sync"

	"github.com/benoitkugler/shapes/shape"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/font/opentype"
)

// The fixed fonts are served by the bitmap faces shipped with x/image,
// the proportional ones by Go fonts scaled to the pixel size of the font.
var fontSources = map[shape.Font]struct {
	bitmap font.Face // if nil, ttf is scaled to size
	ttf    []byte
	size   float64
}{
	shape.Fixed8x13:    {bitmap: basicfont.Face7x13},
	shape.Fixed9x15:    {bitmap: inconsolata.Regular8x16},
	shape.Helvetica10:  {ttf: goregular.TTF, size: 10},
	shape.Helvetica12:  {ttf: goregular.TTF, size: 12},
	shape.Helvetica18:  {ttf: goregular.TTF, size: 18},
	shape.TimesRoman10: {ttf: gosmallcaps.TTF, size: 10},
	shape.TimesRoman24: {ttf: gosmallcaps.TTF, size: 24},
}

var (
	facesMu sync.Mutex
	faces   = map[shape.Font]font.Face{}
	parsed  = map[*byte]*opentype.Font{}
)

// Face returns the font face used to render `f`.
// Faces are loaded once and shared.
func Face(f shape.Font) (font.Face, error) {
	facesMu.Lock()
	defer facesMu.Unlock()

	if face, ok := faces[f]; ok {
		return face, nil
	}
	src, ok := fontSources[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shape.ErrUnknownFont, f)
	}
	if src.bitmap != nil {
		faces[f] = src.bitmap
		return src.bitmap, nil
	}

	ttf, ok := parsed[&src.ttf[0]]
	if !ok {
		var err error
		ttf, err = opentype.Parse(src.ttf)
		if err != nil {
			return nil, fmt.Errorf("parsing font for %s: %w", f, err)
		}
		parsed[&src.ttf[0]] = ttf
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    src.size,
		DPI:     72, // one point per pixel
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", f, err)
	}
	faces[f] = face
	shape.Logger().Debug("font face loaded", "font", f.String(), "size", src.size)
	return face, nil
}
