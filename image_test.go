package pixbuf

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Verify at compile time that PixelBuffer implements image.Image.
var _ image.Image = (*PixelBuffer)(nil)

func TestImageInterface(t *testing.T) {
	buf := newFilled(t, 3, 2, Blue)
	buf.Pixels()[4] = Red

	assert.Equal(t, image.Rect(0, 0, 3, 2), buf.Bounds())
	assert.Equal(t, ColorModel, buf.ColorModel())
	assert.Equal(t, Red, buf.At(1, 1))
	assert.Equal(t, Transparent, buf.At(5, 5))
}

func TestToNRGBA(t *testing.T) {
	buf := newFilled(t, 2, 2, 0x11223344)
	img := buf.ToNRGBA()
	assert.Equal(t, color.NRGBA{0x11, 0x22, 0x33, 0x44}, img.NRGBAAt(1, 1))
}

func TestFromImage(t *testing.T) {
	t.Run("nrgba", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
		src.SetNRGBA(12, 11, color.NRGBA{1, 2, 3, 4})

		buf, err := FromImage(src)
		require.NoError(t, err)
		assert.Equal(t, 3, buf.Width())
		c, _ := buf.Pixel(2, 1)
		assert.Equal(t, Color(0x01020304), c)
	})

	t.Run("gray", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 2, 2))
		src.SetGray(0, 1, color.Gray{Y: 0x7F})

		buf, err := FromImage(src)
		require.NoError(t, err)
		c, _ := buf.Pixel(0, 1)
		assert.Equal(t, Color(0x7F7F7FFF), c)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FromImage(image.NewRGBA(image.Rectangle{}))
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestPNGRoundTrip(t *testing.T) {
	buf := newFilled(t, 8, 6, Black)
	buf.FillCircle(4, 3, 2, Red)
	buf.DrawRect(0, 0, 7, 5, Green)

	var enc bytes.Buffer
	require.NoError(t, png.Encode(&enc, buf))

	back, err := Decode(&enc)
	require.NoError(t, err)
	assert.Equal(t, buf.Pixels(), back.Pixels())
}

func TestDrawInterop(t *testing.T) {
	buf := newFilled(t, 4, 4, White)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(dst, dst.Bounds(), buf, image.Point{}, draw.Src)
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, dst.RGBAAt(3, 3))
}
