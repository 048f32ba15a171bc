package cmd

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/writer/styled"
)

func defaultOptions() options {
	return options{
		data:       "HI",
		output:     "qrcode.png",
		format:     "png",
		bgColor:    "#ffffff",
		fgColor:    "#000000",
		dotStyle:   "square",
		eyeStyle:   "square",
		errorLevel: "M",
		logoSize:   0.2,
		size:       300,
		border:     4,
	}
}

func TestBuildStyleConfig_Defaults(t *testing.T) {
	o := defaultOptions()
	cfg, err := buildStyleConfig(&o)
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Size)
	assert.Equal(t, 4, cfg.Border)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cfg.Background)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cfg.Foreground)
	assert.Equal(t, styled.DotSquare, cfg.Dot)
	assert.Equal(t, styled.EyeSquare, cfg.Eye)
	assert.Nil(t, cfg.Gradient)
	assert.Equal(t, "png", cfg.Format)
}

func TestBuildStyleConfig_StylesAndGradient(t *testing.T) {
	o := defaultOptions()
	o.dotStyle = "Rounded"
	o.eyeStyle = "FRAME"
	o.gradient = "#ff0000,#0000ff"
	o.format = "SVG"

	cfg, err := buildStyleConfig(&o)
	require.NoError(t, err)
	assert.Equal(t, styled.DotRounded, cfg.Dot)
	assert.Equal(t, styled.EyeFrame, cfg.Eye)
	require.NotNil(t, cfg.Gradient)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, cfg.Gradient.From)
	assert.Equal(t, "svg", cfg.Format)
}

func TestBuildStyleConfig_BadColor(t *testing.T) {
	o := defaultOptions()
	o.fgColor = "#zz"
	_, err := buildStyleConfig(&o)
	require.Error(t, err)
	assert.True(t, errors.Is(err, styled.ErrParse))
}

func TestBuildStyleConfig_BadFormat(t *testing.T) {
	o := defaultOptions()
	o.format = "pdf"
	_, err := buildStyleConfig(&o)
	require.Error(t, err)
	assert.True(t, errors.Is(err, styled.ErrUnsupportedFormat))
}
