package qrforge_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge"
)

func TestEncode_Version1Width(t *testing.T) {
	m, err := qrforge.EncodeWithVersion("HI", 1, qrforge.LevelM)
	require.NoError(t, err)
	assert.Equal(t, 21, m.Width())
}

func TestEncode_AutoVersion(t *testing.T) {
	m, err := qrforge.Encode("https://example.com/some/long/path", qrforge.LevelH)
	require.NoError(t, err)

	// Valid QR widths are 21 + 4*(version-1).
	assert.GreaterOrEqual(t, m.Width(), 21)
	assert.Equal(t, 0, (m.Width()-21)%4)
}

func TestEncode_PayloadTooLarge(t *testing.T) {
	big := make([]byte, 200)
	for i := range big {
		big[i] = 'a'
	}
	_, err := qrforge.EncodeWithVersion(string(big), 1, qrforge.LevelH)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrforge.ErrEncode))
}

func TestEncode_InvalidVersion(t *testing.T) {
	for _, v := range []int{0, -1, 41} {
		_, err := qrforge.EncodeWithVersion("HI", v, qrforge.LevelM)
		require.Error(t, err, "version %d", v)
		assert.True(t, errors.Is(err, qrforge.ErrEncode))
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, qrforge.LevelL, qrforge.ParseLevel("L"))
	assert.Equal(t, qrforge.LevelL, qrforge.ParseLevel("l"))
	assert.Equal(t, qrforge.LevelQ, qrforge.ParseLevel("q"))
	assert.Equal(t, qrforge.LevelH, qrforge.ParseLevel("H"))
	assert.Equal(t, qrforge.LevelM, qrforge.ParseLevel("M"))
	assert.Equal(t, qrforge.LevelM, qrforge.ParseLevel("x"))
}

func TestMatrix_At(t *testing.T) {
	m := qrforge.NewMatrix([][]bool{
		{true, false},
		{false, true},
	})
	assert.Equal(t, 2, m.Width())
	assert.True(t, m.At(0, 0))
	assert.False(t, m.At(1, 0))
	assert.False(t, m.At(0, 1))
	assert.True(t, m.At(1, 1))
}
