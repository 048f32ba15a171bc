package styled

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/pkg/errors"
)

// ParseColor parses a CSS color literal (#rgb, #rrggbb, #rrggbbaa,
// named colors, rgb(...), hsl(...)) into an RGBA value. The sentinel
// "transparent" (case-insensitive) yields the zero color. Float channels
// are scaled by 255 and truncated toward zero.
func ParseColor(s string) (color.RGBA, error) {
	if strings.EqualFold(strings.TrimSpace(s), "transparent") {
		return color.RGBA{}, nil
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrParse, "parse color %q", s)
	}
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}, nil
}

// ParseGradient parses two comma-separated color literals, e.g.
// "#ff0000,#0000ff". Whitespace around each part is trimmed; exactly
// two parts are required.
func ParseGradient(s string) (*Gradient, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.Wrapf(ErrParse, "gradient %q: need exactly 2 comma-separated colors, got %d", s, len(parts))
	}
	from, err := ParseColor(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	to, err := ParseColor(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	return &Gradient{From: from, To: to}, nil
}

// Lerp interpolates component-wise between c0 and c1 on RGB. The alpha
// channel is forced to 255: gradient modules are always opaque. t is not
// clamped; callers supply t in [0, 1]. Conversions truncate toward zero.
func Lerp(c0, c1 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c0.R) + (float64(c1.R)-float64(c0.R))*t),
		G: uint8(float64(c0.G) + (float64(c1.G)-float64(c0.G))*t),
		B: uint8(float64(c0.B) + (float64(c1.B)-float64(c0.B))*t),
		A: 255,
	}
}

// At returns the gradient color for column x of an n-wide matrix.
func (g *Gradient) At(x, n int) color.RGBA {
	return Lerp(g.From, g.To, float64(x)/float64(n))
}

func hexRGB(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
