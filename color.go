package pixbuf

import (
	"fmt"
	"image/color"
)

// Color is a packed 32-bit straight-alpha color.
//
// Byte layout from most to least significant: red, green, blue, alpha.
// The value 0x11223344 has R=0x11, G=0x22, B=0x33, A=0x44.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0x000000FF
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFF0000FF
	Green       Color = 0x00FF00FF
	Blue        Color = 0x0000FFFF
)

// RGBA8 packs four 8-bit channels into a Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB8 packs an opaque color.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^0xFF | Color(a)
}

// RGBA implements color.Color. Like every color.Color, the result is
// alpha-premultiplied and scaled to 16 bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ColorModel converts any color.Color to a Color.
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	return colorModel(c).(Color)
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'. Formats without alpha are opaque.
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		v = v<<4 | d
	}

	switch len(s) {
	case 3: // RGB
		return Color(expandNibbles(v<<4|0xF, 4)), nil
	case 4: // RGBA
		return Color(expandNibbles(v, 4)), nil
	case 6: // RRGGBB
		return Color(v<<8 | 0xFF), nil
	case 8: // RRGGBBAA
		return Color(v), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
}

// expandNibbles turns n packed nibbles into n bytes, repeating each nibble
// ("F" becomes "FF").
func expandNibbles(v uint32, n int) uint32 {
	var out uint32
	for i := n - 1; i >= 0; i-- {
		d := (v >> (4 * i)) & 0xF
		out = out<<8 | d*17
	}
	return out
}

// hexDigit is a helper for hex parsing
func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}
