// Package blend provides the integer math behind pixbuf's per-pixel
// compositing.
//
// All channel values are straight (non-premultiplied) bytes. Division by 255
// is done without a divide instruction using Alvy Ray Smith's formula, which
// is exact over the whole range produced by blending two bytes.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// Exact (floor) for every x in [0, 255*255].
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}
