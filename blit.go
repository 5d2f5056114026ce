package pixbuf

import "strings"

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// ImageFlag controls the traversal direction of a blit.
// Flags combine with bitwise OR.
type ImageFlag uint8

const (
	// FlipNone copies the source as is.
	FlipNone ImageFlag = 0

	// FlipX mirrors the source horizontally.
	FlipX ImageFlag = 1 << 0

	// FlipY mirrors the source vertically.
	FlipY ImageFlag = 1 << 1
)

// FlipsX reports whether f mirrors horizontally.
func (f ImageFlag) FlipsX() bool {
	return f&FlipX != 0
}

// FlipsY reports whether f mirrors vertically.
func (f ImageFlag) FlipsY() bool {
	return f&FlipY != 0
}

// String returns a string representation of the flags.
func (f ImageFlag) String() string {
	if f == FlipNone {
		return "None"
	}
	var parts []string
	if f.FlipsX() {
		parts = append(parts, "FlipX")
	}
	if f.FlipsY() {
		parts = append(parts, "FlipY")
	}
	if rest := f &^ (FlipX | FlipY); rest != 0 {
		parts = append(parts, "Unknown")
	}
	return strings.Join(parts, "|")
}

// DrawImage composites all of src onto b with its top-left corner at (x, y).
//
// Source alpha blends onto the destination through DrawPixel. Rows and
// columns falling outside b are skipped. With FlipX and/or FlipY set, the
// source is read from the opposite edge, producing a mirrored copy.
// A nil or empty src is a no-op.
func (b *PixelBuffer) DrawImage(src *PixelBuffer, x, y int, flags ImageFlag) {
	if src.IsEmpty() {
		return
	}
	b.DrawSubImage(src, Rect{X: 0, Y: 0, Width: src.width, Height: src.height}, x, y, flags)
}

// DrawSubImage composites the region r of src onto b with its top-left
// corner at (x, y). Flip flags mirror the region as in DrawImage.
//
// The caller must keep r inside src; reads outside it are undefined and
// may panic.
// Does nothing if r is degenerate or its destination lies entirely off b.
func (b *PixelBuffer) DrawSubImage(src *PixelBuffer, r Rect, x, y int, flags ImageFlag) {
	if src.IsEmpty() || r.Width < 1 || r.Height < 1 {
		return
	}
	if x+r.Width <= 0 || y+r.Height <= 0 || x >= b.width || y >= b.height {
		return
	}

	// Source traversal: start column/row and step for each axis.
	sx0, sxStep := r.X, 1
	if flags.FlipsX() {
		sx0, sxStep = r.X+r.Width-1, -1
	}
	sy0, syStep := r.Y, 1
	if flags.FlipsY() {
		sy0, syStep = r.Y+r.Height-1, -1
	}

	x0, x1 := clipSpan(x, x+r.Width, b.width)
	y0, y1 := clipSpan(y, y+r.Height, b.height)
	for dy := y0; dy < y1; dy++ {
		sy := sy0 + (dy-y)*syStep
		row := src.pix[sy*src.width:]
		for dx := x0; dx < x1; dx++ {
			sx := sx0 + (dx-x)*sxStep
			b.DrawPixel(dx, dy, row[sx])
		}
	}
}
