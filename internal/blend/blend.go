package blend

// Lerp mixes one channel of dst toward src by weight a/255.
//
// Formula: (dst*(255-a) + src*a) / 255
//
// The sum never exceeds 255*255, so it fits in uint16 and div255 is exact.
// a == 0 returns dst and a == 255 returns src unchanged.
func Lerp(dst, src, a byte) byte {
	return byte(div255(uint16(dst)*uint16(inv255(a)) + uint16(src)*uint16(a)))
}

// Over composites a straight-alpha source pixel onto a destination pixel.
//
// Red, green and blue are mixed with Lerp using the source alpha as weight.
// The destination alpha is discarded: the result carries the source alpha
// unchanged.
func Over(dr, dg, db, sr, sg, sb, sa byte) (r, g, b, a byte) {
	switch sa {
	case 0:
		return dr, dg, db, 0
	case 255:
		return sr, sg, sb, 255
	}
	return Lerp(dr, sr, sa), Lerp(dg, sg, sa), Lerp(db, sb, sa), sa
}
