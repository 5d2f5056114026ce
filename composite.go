package pixbuf

import "github.com/gogpu/pixbuf/internal/blend"

// DrawPixel composites c onto the pixel at (x, y).
//
// The red, green and blue channels are mixed with the existing pixel using
// c's alpha as opacity; the stored alpha becomes c's alpha. An opaque c
// replaces the pixel exactly, a fully transparent c keeps the old color
// channels.
//
// DrawPixel does no bounds checking: (x, y) must lie inside the buffer.
// Every shape and blit method clips before calling it.
func (b *PixelBuffer) DrawPixel(x, y int, c Color) {
	i := y*b.width + x
	d := b.pix[i]
	r, g, bl, a := blend.Over(d.R(), d.G(), d.B(), c.R(), c.G(), c.B(), c.A())
	b.pix[i] = RGBA8(r, g, bl, a)
}

// Clear overwrites every pixel with c. No blending is performed.
func (b *PixelBuffer) Clear(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}
