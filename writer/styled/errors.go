package styled

import "github.com/pkg/errors"

// Stable error kinds surfaced by the renderer. Call sites wrap them with
// the failing input; match with errors.Is.
var (
	// ErrParse covers bad color or gradient literals.
	ErrParse = errors.New("invalid color format")

	// ErrUnsupportedFormat is returned for output formats outside Formats.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrIO covers filesystem failures while reading the logo.
	ErrIO = errors.New("i/o failure")

	// ErrDecode covers undecodable logo images.
	ErrDecode = errors.New("image decode failed")
)
