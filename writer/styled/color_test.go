package styled_test

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/writer/styled"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"transparent", color.RGBA{}},
		{"TRANSPARENT", color.RGBA{}},
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#f00", color.RGBA{255, 0, 0, 255}},
		{"#ff000080", color.RGBA{255, 0, 0, 128}},
		{"red", color.RGBA{255, 0, 0, 255}},
		{"rgb(0, 128, 255)", color.RGBA{0, 128, 255, 255}},
		{"hsl(0, 100%, 50%)", color.RGBA{255, 0, 0, 255}},
	}
	for _, tc := range cases {
		got, err := styled.ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"#zz", "#12345", "notacolor", ""} {
		_, err := styled.ParseColor(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, styled.ErrParse), in)
	}
}

func TestParseGradient(t *testing.T) {
	g, err := styled.ParseGradient("#ff0000,#0000ff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, g.From)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, g.To)

	// Surrounding whitespace is trimmed.
	g, err = styled.ParseGradient(" #ff0000 , #0000ff ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, g.From)
}

func TestParseGradient_Invalid(t *testing.T) {
	for _, in := range []string{"#ff0000", "#ff0000,#00ff00,#0000ff", "#ff0000,#zz"} {
		_, err := styled.ParseGradient(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, styled.ErrParse), in)
	}
}

func TestLerp_Endpoints(t *testing.T) {
	c0 := color.RGBA{10, 20, 30, 40}
	c1 := color.RGBA{200, 100, 50, 60}

	got := styled.Lerp(c0, c1, 0)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, got, "alpha forced opaque")

	got = styled.Lerp(c0, c1, 1)
	assert.Equal(t, color.RGBA{200, 100, 50, 255}, got)
}

func TestLerp_Truncates(t *testing.T) {
	c0 := color.RGBA{0, 0, 0, 255}
	c1 := color.RGBA{255, 255, 255, 255}

	// 255 * 0.5 = 127.5, truncated toward zero.
	got := styled.Lerp(c0, c1, 0.5)
	assert.Equal(t, color.RGBA{127, 127, 127, 255}, got)
}

func TestGradientAt(t *testing.T) {
	g := &styled.Gradient{
		From: color.RGBA{255, 0, 0, 255},
		To:   color.RGBA{0, 0, 255, 255},
	}
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, g.At(0, 21))

	// Column 20 of 21: t = 20/21.
	got := g.At(20, 21)
	assert.Equal(t, uint8(12), got.R)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(242), got.B)
	assert.Equal(t, uint8(255), got.A)
}
