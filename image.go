package pixbuf

import (
	"image"
	"image/color"
)

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	c, _ := b.Pixel(x, y)
	return c
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return ColorModel
}

// ToNRGBA copies the buffer into a new *image.NRGBA.
func (b *PixelBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for i, c := range b.pix {
		o := i * 4
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = c.A()
	}
	return img
}

// FromImage creates a pixel buffer from an image.
// Returns an error wrapping ErrInvalidDimensions for an empty image.
func FromImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			row := nrgba.Pix[y*nrgba.Stride:]
			for x := range buf.width {
				o := x * 4
				buf.pix[y*buf.width+x] = RGBA8(row[o], row[o+1], row[o+2], row[o+3])
			}
		}
		return buf, nil
	}

	// Generic slow path for any image type
	for y := range buf.height {
		for x := range buf.width {
			buf.pix[y*buf.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return buf, nil
}
