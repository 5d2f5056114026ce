package pixbuf

import (
	"fmt"
	"math"
)

// MaxPixels is the largest pixel count New will allocate (1 GiB of pixels).
const MaxPixels = 1 << 28

// channels is the number of channels every PixelBuffer stores. The internal
// representation is always packed RGBA regardless of where the pixels came from.
const channels = 4

// PixelBuffer is an owned, dense RGBA raster of fixed width and height.
//
// Pixels are stored row-major as packed Colors. A PixelBuffer is mutated in
// place by every drawing and blit method and provides no internal locking:
// callers must not use the same buffer from several goroutines at once.
//
// A PixelBuffer is only obtained from New or one of the loaders, which
// return an error instead of a buffer on failure. Destroy releases the
// pixels; a destroyed buffer is empty and must not be drawn into.
type PixelBuffer struct {
	width    int
	height   int
	channels int
	pix      []Color
}

// New creates a pixel buffer with the given dimensions.
// All pixels start as Transparent.
//
// Returns an error wrapping ErrInvalidDimensions if width or height is less
// than one or the pixel count exceeds MaxPixels.
func New(width, height int) (*PixelBuffer, error) {
	if width < 1 || height < 1 || height > math.MaxInt/width || width*height > MaxPixels {
		err := fmt.Errorf("%w: cannot create %dx%d buffer", ErrInvalidDimensions, width, height)
		Logger().Warn("pixbuf: create failed", "width", width, "height", height, "err", err)
		return nil, err
	}

	return &PixelBuffer{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]Color, width*height),
	}, nil
}

// Destroy releases the pixel storage and resets the dimensions to zero.
// Calling Destroy on an already empty or nil buffer is a no-op.
func (b *PixelBuffer) Destroy() {
	if b == nil {
		return
	}
	b.pix = nil
	b.width = 0
	b.height = 0
	b.channels = 0
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Channels returns the number of channels per pixel: 4 for a live buffer,
// 0 after Destroy.
func (b *PixelBuffer) Channels() int {
	return b.channels
}

// Pixels returns the live pixel slice, row-major, Width()*Height() long.
// Writes through the slice bypass compositing.
func (b *PixelBuffer) Pixels() []Color {
	return b.pix
}

// IsEmpty returns true if the buffer has zero dimensions.
func (b *PixelBuffer) IsEmpty() bool {
	return b == nil || b.width == 0 || b.height == 0
}

// Pixel returns the color at (x, y).
// Returns false if the coordinates are outside the buffer.
func (b *PixelBuffer) Pixel(x, y int) (Color, bool) {
	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.pix[y*b.width+x], true
}

// Clone creates a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]Color, len(b.pix))
	copy(pix, b.pix)

	return &PixelBuffer{
		width:    b.width,
		height:   b.height,
		channels: b.channels,
		pix:      pix,
	}
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
