package styled

import (
	"image"
	"image/draw"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// Register the common decoders so any of them can serve as a logo.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// overlayLogo reads the image at path, resizes it so its longest side is
// floor(canvas*ratio) while preserving aspect ratio, and composites it
// source-over at the canvas center. ratio is clamped to [0.1, 0.4].
// No halo is drawn underneath; logos wanting one must carry it.
func overlayLogo(canvas *image.RGBA, path string, ratio float64) error {
	logo, err := readLogo(path)
	if err != nil {
		return err
	}

	size := canvas.Bounds().Dx()
	w, h := fitLogo(logo.Bounds().Dx(), logo.Bounds().Dy(), size, ratio)
	resized := imaging.Resize(logo, w, h, imaging.Lanczos)

	offset := image.Pt((size-w)/2, (size-h)/2)
	draw.Draw(canvas, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(w, h))}, resized, image.Point{}, draw.Over)
	return nil
}

func readLogo(path string) (image.Image, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "open logo %q: %v", path, err)
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "decode logo %q: %v", path, err)
	}
	return img, nil
}

// fitLogo computes the resized dimensions: the longest side becomes
// floor(size*ratio) and the other side keeps the aspect ratio, both
// truncated toward zero.
func fitLogo(w, h, size int, ratio float64) (int, int) {
	if ratio < 0.1 {
		ratio = 0.1
	}
	if ratio > 0.4 {
		ratio = 0.4
	}
	maxSide := int(float64(size) * ratio)
	if w >= h {
		return maxSide, h * maxSide / w
	}
	return w * maxSide / h, maxSide
}
