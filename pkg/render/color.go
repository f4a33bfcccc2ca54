package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/polyline/pkg/errors"
)

// ParseColor parses a "#rgb" or "#rrggbb" hex colour.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", s)
	}
	return c, nil
}

// Hex formats c as "#rrggbb". Alpha is ignored.
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent colours cannot be converted.
		return "none"
	}
	return cf.Clamped().Hex()
}

func mustHex(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
