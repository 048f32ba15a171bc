// Package styled renders QR module matrices into styled raster images
// or SVG documents: per-module glyphs, distinct finder-pattern glyphs,
// an optional horizontal color gradient and an optional centered logo.
package styled

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"

	"github.com/qrforge/qrforge"
)

// Output is the result of a render: exactly one of Image or SVG is set,
// depending on the configured format.
type Output struct {
	Image *image.RGBA
	SVG   string
}

// Render draws the matrix according to cfg. The "svg" format selects the
// vector pipeline; every other whitelisted format produces a raster
// canvas of cfg.Size × cfg.Size pixels. Unknown formats are rejected
// with ErrUnsupportedFormat before any work happens.
func Render(m *qrforge.Matrix, cfg StyleConfig) (*Output, error) {
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	if format == "svg" {
		doc, err := renderSVG(m, cfg)
		if err != nil {
			return nil, err
		}
		return &Output{SVG: doc}, nil
	}
	img, err := renderRaster(m, cfg)
	if err != nil {
		return nil, err
	}
	return &Output{Image: img}, nil
}

// RenderSVG renders the matrix as an SVG document regardless of
// cfg.Format.
func RenderSVG(m *qrforge.Matrix, cfg StyleConfig) (string, error) {
	return renderSVG(m, cfg)
}

// moduleScale derives the integer pixels-per-module. The floor division
// can leave a background strip at the right/bottom of the canvas.
func moduleScale(size, width, border int) (int, error) {
	scale := size / (width + 2*border)
	if scale < 1 {
		return 0, errors.Errorf("output size %d px too small for %d modules with border %d", size, width, border)
	}
	return scale, nil
}

func renderRaster(m *qrforge.Matrix, cfg StyleConfig) (*image.RGBA, error) {
	n := m.Width()
	scale, err := moduleScale(cfg.Size, n, cfg.Border)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	walkModules(m, cfg, func(x, y int, inEye bool, c color.RGBA) {
		px := (x + cfg.Border) * scale
		py := (y + cfg.Border) * scale
		if inEye {
			eyeShape(cfg.Eye).draw(img, px, py, scale, c)
		} else {
			dotShape(cfg.Dot).draw(img, px, py, scale, c)
		}
	})

	if cfg.LogoPath != "" {
		if err := overlayLogo(img, cfg.LogoPath, cfg.LogoRatio); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// walkModules visits every dark module in row-major order and hands the
// callback its eye classification and color. Row-major order pins
// determinism: if two glyphs ever overlapped, the later module wins.
func walkModules(m *qrforge.Matrix, cfg StyleConfig, visit func(x, y int, inEye bool, c color.RGBA)) {
	n := m.Width()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.At(x, y) {
				continue
			}
			c := cfg.Foreground
			if cfg.Gradient != nil {
				c = cfg.Gradient.At(x, n)
			}
			visit(x, y, inEyeRegion(x, y, n), c)
		}
	}
}

// inEyeRegion reports whether (x, y) falls inside one of the three 7×7
// finder patterns anchored at (0,0), (N-7,0) and (0,N-7).
func inEyeRegion(x, y, n int) bool {
	anchors := [3][2]int{{0, 0}, {n - 7, 0}, {0, n - 7}}
	for _, a := range anchors {
		if x >= a[0] && x < a[0]+7 && y >= a[1] && y < a[1]+7 {
			return true
		}
	}
	return false
}
