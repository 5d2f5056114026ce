// Package pixbuf provides a software RGBA framebuffer for Go.
//
// # Overview
//
// pixbuf is a small, pure Go pixel-buffer rasterizer. A PixelBuffer is an
// in-memory RGBA image that you draw shapes into, composite pixels onto and
// blit loaded bitmaps across, then hand to whatever presents it (a window
// surface, an image encoder, a terminal).
//
// # Quick Start
//
//	import "github.com/gogpu/pixbuf"
//
//	buf, err := pixbuf.New(320, 240)
//	if err != nil {
//		return err
//	}
//	defer buf.Destroy()
//
//	buf.Clear(pixbuf.Black)
//	buf.FillRect(10, 10, 100, 50, pixbuf.RGBA8(255, 128, 0, 200))
//	buf.DrawCircle(160, 120, 40, pixbuf.White)
//
//	sprite, err := pixbuf.LoadImage("sprite.png")
//	if err != nil {
//		return err
//	}
//	buf.DrawImage(sprite, 200, 100, pixbuf.FlipX)
//
// # Colors
//
// Colors are packed 32-bit values laid out as 0xRRGGBBAA. Alpha is straight
// (not premultiplied). Clear writes colors verbatim; every other drawing
// method composites through DrawPixel, which mixes the color channels by the
// incoming alpha and stores the incoming alpha.
//
// # Clipping
//
// Shapes and blits clip against the buffer and return early when they lie
// entirely outside it. DrawPixel itself does not clip: it is the primitive
// the clipped routines are built on.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// A PixelBuffer has no internal locking. Use each buffer from one goroutine
// at a time. Reading one buffer as a blit source while drawing into another
// is safe.
package pixbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
