// Package qrforge encodes text into QR module matrices. The actual
// Reed-Solomon construction, mask selection and version sizing are
// delegated to skip2/go-qrcode; this package only exposes the resulting
// boolean grid in a form the styled renderer can consume.
package qrforge

import (
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// Level is the Reed-Solomon error correction level.
type Level uint8

const (
	// LevelL recovers ~7% of data.
	LevelL Level = iota
	// LevelM recovers ~15% of data.
	LevelM
	// LevelQ recovers ~25% of data.
	LevelQ
	// LevelH recovers ~30% of data.
	LevelH
)

// ParseLevel maps "L", "M", "Q", "H" (case-insensitive) to a Level.
// Anything else falls back to LevelM, matching the CLI default.
func ParseLevel(s string) Level {
	switch s {
	case "L", "l":
		return LevelL
	case "Q", "q":
		return LevelQ
	case "H", "h":
		return LevelH
	default:
		return LevelM
	}
}

// String returns the single-letter name of the level.
func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "M"
	}
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return qrcode.Low
	case LevelQ:
		return qrcode.High
	case LevelH:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ErrEncode wraps every failure of the underlying QR construction:
// payload too large for the chosen version/EC level, or an invalid
// version number.
var ErrEncode = errors.New("qr encoding failed")

// Matrix is a square grid of dark/light modules without a quiet zone.
// It is immutable once constructed; renderers only read it.
type Matrix struct {
	rows [][]bool
}

// NewMatrix wraps pre-computed module rows, indexed rows[y][x].
// The grid must be square; NewMatrix does not copy it.
func NewMatrix(rows [][]bool) *Matrix {
	return &Matrix{rows: rows}
}

// Width returns the number of modules per side.
func (m *Matrix) Width() int {
	return len(m.rows)
}

// At reports whether the module at (x, y) is dark.
func (m *Matrix) At(x, y int) bool {
	return m.rows[y][x]
}

// Encode builds a QR matrix for data, letting the encoder pick the
// smallest version that fits.
func Encode(data string, level Level) (*Matrix, error) {
	qr, err := qrcode.New(data, level.recovery())
	if err != nil {
		return nil, errors.Wrapf(ErrEncode, "encode %q: %v", truncateForError(data), err)
	}
	qr.DisableBorder = true
	return &Matrix{rows: qr.Bitmap()}, nil
}

// EncodeWithVersion builds a QR matrix with a forced version in 1..40.
func EncodeWithVersion(data string, version int, level Level) (*Matrix, error) {
	if version < 1 || version > 40 {
		return nil, errors.Wrapf(ErrEncode, "invalid version %d: must be 1..40", version)
	}
	qr, err := qrcode.NewWithForcedVersion(data, version, level.recovery())
	if err != nil {
		return nil, errors.Wrapf(ErrEncode, "encode %q at version %d: %v", truncateForError(data), version, err)
	}
	qr.DisableBorder = true
	return &Matrix{rows: qr.Bitmap()}, nil
}

// Error messages should name the failing input without dumping huge
// payloads into logs.
func truncateForError(s string) string {
	const max = 48
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
