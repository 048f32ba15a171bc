package styled

import (
	"image"
	"image/color"
	"math"
)

var (
	_shapeSquare  shape = squareShape{}
	_shapeCircle  shape = circleShape{}
	_shapeRounded shape = roundedShape{}
	_shapeFrame   shape = frameShape{}
)

// shape rasterizes one module-sized glyph into the canvas. Writes are
// plain replacement, never alpha blending, so modules paint directly
// onto the background. Pixels outside the canvas are discarded.
type shape interface {
	draw(img *image.RGBA, px, py, scale int, c color.RGBA)
}

func dotShape(s DotStyle) shape {
	switch s {
	case DotCircle:
		return _shapeCircle
	case DotRounded:
		return _shapeRounded
	default:
		return _shapeSquare
	}
}

func eyeShape(s EyeStyle) shape {
	switch s {
	case EyeCircle:
		return _shapeCircle
	case EyeFrame:
		return _shapeFrame
	default:
		return _shapeSquare
	}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && y >= 0 && x < img.Rect.Max.X && y < img.Rect.Max.Y {
		img.SetRGBA(x, y, c)
	}
}

// squareShape fills the whole scale×scale cell.
type squareShape struct{}

func (squareShape) draw(img *image.RGBA, px, py, scale int, c color.RGBA) {
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			setClipped(img, px+dx, py+dy, c)
		}
	}
}

// circleShape fills pixels whose distance from the cell center is at
// most scale/2. Hard-edged on purpose: no anti-aliasing.
type circleShape struct{}

func (circleShape) draw(img *image.RGBA, px, py, scale int, c color.RGBA) {
	cx := float64(px) + float64(scale)/2
	cy := float64(py) + float64(scale)/2
	radius := float64(scale) / 2
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			x, y := px+dx, py+dy
			dist := math.Hypot(float64(x)-cx, float64(y)-cy)
			if dist <= radius {
				setClipped(img, x, y, c)
			}
		}
	}
}

// roundedShape fills the cell except the four corner cut-outs: a pixel
// in a corner region survives only within radius of that corner's inset
// center. The region tests are strict and the distance test inclusive,
// so pixels exactly on a region boundary always pass.
type roundedShape struct{}

func (roundedShape) draw(img *image.RGBA, px, py, scale int, c color.RGBA) {
	radius := float64(scale) * 0.3
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			if insideRounded(dx, dy, scale, radius) {
				setClipped(img, px+dx, py+dy, c)
			}
		}
	}
}

func insideRounded(dx, dy, scale int, radius float64) bool {
	fx, fy := float64(dx), float64(dy)
	edge := float64(scale)

	inCorner := (fx < radius && fy < radius) ||
		(fx > edge-radius && fy < radius) ||
		(fx < radius && fy > edge-radius) ||
		(fx > edge-radius && fy > edge-radius)
	if !inCorner {
		return true
	}

	centers := [4][2]float64{
		{radius, radius},
		{edge - radius, radius},
		{radius, edge - radius},
		{edge - radius, edge - radius},
	}
	for _, ct := range centers {
		if math.Hypot(fx-ct[0], fy-ct[1]) <= radius {
			return true
		}
	}
	return false
}

// frameShape fills a hollow ring of thickness max(1, floor(0.2*scale)),
// used for finder patterns only.
type frameShape struct{}

func (frameShape) draw(img *image.RGBA, px, py, scale int, c color.RGBA) {
	thickness := int(float64(scale) * 0.2)
	if thickness < 1 {
		thickness = 1
	}
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			if dx < thickness || dx >= scale-thickness || dy < thickness || dy >= scale-thickness {
				setClipped(img, px+dx, py+dy, c)
			}
		}
	}
}
