package shape

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for unrecognized colors.
var ErrUnknownColor = errors.New("unknown color")

// DefaultBorderColor outlines selected shapes when Border.Color is nil.
var DefaultBorderColor color.Color = colornames.Red

// ParseColor accepts a color name ("forestgreen"), or an hexadecimal
// value written 0xRRGGBB or #RRGGBB. The returned color is opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	var hex string
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	default:
		key := strings.ToLower(strings.ReplaceAll(s, " ", ""))
		if c, ok := colornames.Map[key]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// formatColor renders c as 0xRRGGBB, for debug output.
func formatColor(c color.Color) string {
	if c == nil {
		return "<nil>"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("0x%02x%02x%02x", r>>8, g>>8, b>>8)
}
