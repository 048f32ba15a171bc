package styled

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"sort"

	"github.com/HugoSmits86/nativewebp"
	avif "github.com/Kagami/go-avif"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"
	qoi "github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageEncoder describes how to encode a rendered image into a writer.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image) error
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, nil)
}

type gifEncoder struct{}

func (gifEncoder) Encode(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, nil)
}

type webpEncoder struct{}

func (webpEncoder) Encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

type icoEncoder struct{}

func (icoEncoder) Encode(w io.Writer, img image.Image) error {
	return ico.Encode(w, img)
}

type tgaEncoder struct{}

func (tgaEncoder) Encode(w io.Writer, img image.Image) error {
	return tga.Encode(w, img)
}

type avifEncoder struct{}

func (avifEncoder) Encode(w io.Writer, img image.Image) error {
	return avif.Encode(w, img, nil)
}

type qoiEncoder struct{}

func (qoiEncoder) Encode(w io.Writer, img image.Image) error {
	return qoi.Encode(w, img)
}

// encoders keys every accepted raster format to its codec. "svg" is
// absent on purpose: it never passes through an image.Image.
var encoders = map[string]ImageEncoder{
	"png":  pngEncoder{},
	"jpg":  jpegEncoder{},
	"jpeg": jpegEncoder{},
	"gif":  gifEncoder{},
	"bmp":  bmpEncoder{},
	"tiff": tiffEncoder{},
	"tif":  tiffEncoder{},
	"webp": webpEncoder{},
	"ico":  icoEncoder{},
	"tga":  tgaEncoder{},
	"avif": avifEncoder{},
	"qoi":  qoiEncoder{},
}

// Formats lists every format keyword the facade accepts.
func Formats() []string {
	out := make([]string, 0, len(encoders)+1)
	for f := range encoders {
		out = append(out, f)
	}
	out = append(out, "svg")
	sort.Strings(out)
	return out
}

// ParseFormat validates a format keyword against the whitelist and
// returns it unchanged.
func ParseFormat(format string) (string, error) {
	if format == "svg" {
		return format, nil
	}
	if _, ok := encoders[format]; !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	return format, nil
}

// Write encodes img into w using the codec registered for format.
func Write(w io.Writer, img image.Image, format string) error {
	enc, ok := encoders[format]
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	if err := enc.Encode(w, img); err != nil {
		return errors.Wrapf(err, "encode %s", format)
	}
	return nil
}
