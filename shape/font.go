package shape

import (
	"errors"
	"fmt"
)

// Font is an opaque handle on one of the fixed-size bitmap fonts
// available to text shapes. The zero value is not a valid font.
type Font uint8

const (
	Fixed8x13 Font = iota + 1
	Fixed9x15
	Helvetica10
	Helvetica12
	Helvetica18
	TimesRoman10
	TimesRoman24
)

// ErrUnknownFont is returned when a font name has no handle.
var ErrUnknownFont = errors.New("unknown font")

var fontNames = map[Font]string{
	Fixed8x13:    "Fixed-8x13",
	Fixed9x15:    "Fixed-9x15",
	Helvetica10:  "Helvetica-10",
	Helvetica12:  "Helvetica-12",
	Helvetica18:  "Helvetica-18",
	TimesRoman10: "Times-Roman-10",
	TimesRoman24: "Times-Roman-24",
}

var fontCodes = map[string]Font{
	"Fixed-8x13":     Fixed8x13,
	"Fixed-9x15":     Fixed9x15,
	"Helvetica-10":   Helvetica10,
	"Helvetica-12":   Helvetica12,
	"Helvetica-18":   Helvetica18,
	"Times-Roman-10": TimesRoman10,
	"Times-Roman-24": TimesRoman24,
}

// Fonts returns every known font handle, in declaration order.
func Fonts() []Font {
	return []Font{Fixed8x13, Fixed9x15, Helvetica10, Helvetica12, Helvetica18, TimesRoman10, TimesRoman24}
}

// String returns the human readable font name, such as "Helvetica-12".
func (f Font) String() string {
	if name, ok := fontNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Font(%d)", uint8(f))
}

// Valid reports whether f is one of the known handles.
func (f Font) Valid() bool {
	_, ok := fontNames[f]
	return ok
}

// LookupFont returns the handle of the named font.
func LookupFont(name string) (Font, bool) {
	f, ok := fontCodes[name]
	return f, ok
}

// ParseFont is like LookupFont but returns an error wrapping ErrUnknownFont.
func ParseFont(name string) (Font, error) {
	f, ok := fontCodes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return f, nil
}
