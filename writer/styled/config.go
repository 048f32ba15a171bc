package styled

import "image/color"

// DotStyle selects the glyph used for regular (body) dark modules.
type DotStyle uint8

const (
	DotSquare DotStyle = iota
	DotCircle
	DotRounded
)

// ParseDotStyle maps "square", "circle", "rounded" to a DotStyle.
// Unknown names fall back to DotSquare, matching the CLI behaviour.
func ParseDotStyle(s string) DotStyle {
	switch s {
	case "circle", "Circle", "CIRCLE":
		return DotCircle
	case "rounded", "Rounded", "ROUNDED":
		return DotRounded
	default:
		return DotSquare
	}
}

// EyeStyle selects the glyph used for finder-pattern dark modules.
type EyeStyle uint8

const (
	EyeSquare EyeStyle = iota
	EyeCircle
	EyeFrame
)

// ParseEyeStyle maps "square", "circle", "frame" to an EyeStyle.
// Unknown names fall back to EyeSquare.
func ParseEyeStyle(s string) EyeStyle {
	switch s {
	case "circle", "Circle", "CIRCLE":
		return EyeCircle
	case "frame", "Frame", "FRAME":
		return EyeFrame
	default:
		return EyeSquare
	}
}

// Gradient is an ordered pair of colors interpolated left to right
// across module columns.
type Gradient struct {
	From color.RGBA
	To   color.RGBA
}

// StyleConfig carries every knob the renderer honours. It is produced
// whole by the caller (CLI, config file, library user); the renderer
// fills no defaults.
type StyleConfig struct {
	// Size is the output edge length in pixels. The module scale is
	// Size / (N + 2*Border), floored; the remainder stays background.
	Size int

	// Border is the quiet zone width in modules.
	Border int

	// Background fills the canvas before any module is drawn.
	// A zero alpha means fully transparent.
	Background color.RGBA

	// Foreground colors dark modules when no gradient is set.
	Foreground color.RGBA

	// Gradient, when non-nil, overrides Foreground with a per-column
	// interpolation. Interpolated colors are always opaque.
	Gradient *Gradient

	Dot DotStyle
	Eye EyeStyle

	// LogoPath, when non-empty, names a raster image composited over
	// the canvas center. LogoRatio is the fraction of the canvas edge
	// the logo's longest side may occupy, clamped to [0.1, 0.4].
	LogoPath  string
	LogoRatio float64

	// Format is the output format keyword; see Formats. "svg" selects
	// the vector pipeline, everything else the raster one.
	Format string
}
