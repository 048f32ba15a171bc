package styled

import (
	"bytes"
	"fmt"

	svgo "github.com/ajstarks/svgo"

	"github.com/qrforge/qrforge"
)

// svgUnit is the side length of one module in viewBox units. Ten units
// per module keeps sub-module coordinates (circle centers, corner radii)
// integral.
const svgUnit = 10

const svgGradientID = "qrGradient"

// renderSVG emits the vector equivalent of the raster pipeline: a fixed
// (N+2*border)*10 viewBox scaled to cfg.Size, a background rect unless
// the background is transparent, an optional horizontal gradient, and
// one primitive per dark module.
//
// The eye style is not honoured here; the dot style applies to every
// dark module, finder patterns included.
func renderSVG(m *qrforge.Matrix, cfg StyleConfig) (string, error) {
	n := m.Width()
	units := (n + 2*cfg.Border) * svgUnit

	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Startview(cfg.Size, cfg.Size, 0, 0, units, units)

	if cfg.Background.A != 0 {
		canvas.Rect(0, 0, units, units, fmt.Sprintf(`fill="%s"`, hexRGB(cfg.Background)))
	}

	if cfg.Gradient != nil {
		canvas.Def()
		canvas.LinearGradient(svgGradientID, 0, 0, 100, 0, []svgo.Offcolor{
			{Offset: 0, Color: hexRGB(cfg.Gradient.From), Opacity: 1.0},
			{Offset: 100, Color: hexRGB(cfg.Gradient.To), Opacity: 1.0},
		})
		canvas.DefEnd()
	}

	fill := fmt.Sprintf(`fill="%s"`, hexRGB(cfg.Foreground))
	if cfg.Gradient != nil {
		fill = fmt.Sprintf(`fill="url(#%s)"`, svgGradientID)
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.At(x, y) {
				continue
			}
			px := (x + cfg.Border) * svgUnit
			py := (y + cfg.Border) * svgUnit
			switch cfg.Dot {
			case DotCircle:
				canvas.Circle(px+svgUnit/2, py+svgUnit/2, svgUnit/2, fill)
			case DotRounded:
				canvas.Roundrect(px, py, svgUnit, svgUnit, svgUnit/3, svgUnit/3, fill)
			default:
				canvas.Rect(px, py, svgUnit, svgUnit, fill)
			}
		}
	}

	canvas.End()
	return buf.String(), nil
}
