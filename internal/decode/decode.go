// Package decode turns encoded image files into raw interleaved channel
// bytes for pixbuf.
//
// Format detection is done on the file header with h2non/filetype before any
// decoder runs, so non-image input is refused without being parsed. Decoding
// itself goes through the standard image registry; PNG, JPEG, GIF, BMP,
// TIFF and WebP are registered by this package.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// headerSize is the number of leading bytes filetype needs to identify
// every format it knows.
const headerSize = 262

// Decode errors.
var (
	// ErrUnsupportedType is returned when the data is not an image format
	// this package can decode.
	ErrUnsupportedType = errors.New("decode: unsupported image type")

	// ErrDecode is returned when the data could not be read or decoded.
	ErrDecode = errors.New("decode: failed to decode image")
)

// Raw is a decoded image as interleaved 8-bit channels.
type Raw struct {
	Width    int
	Height   int
	Channels int    // 1 (gray), 2 (gray+alpha), 3 (RGB) or 4 (RGBA)
	Format   string // registered format name, e.g. "png"
	Data     []byte // Width*Height*Channels bytes, row-major
}

// Decode reads an encoded image from r.
func Decode(r io.Reader) (Raw, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Raw{}, fmt.Errorf("%w: read header: %w", ErrDecode, err)
	}
	head = head[:n]

	if n == 0 || !filetype.IsImage(head) {
		return Raw{}, ErrUnsupportedType
	}

	img, format, err := image.Decode(io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			kind, _ := filetype.Match(head)
			return Raw{}, fmt.Errorf("%w: %s", ErrUnsupportedType, kind.Extension)
		}
		return Raw{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	raw := Flatten(img)
	raw.Format = format
	return raw, nil
}

// Flatten converts an in-memory image to interleaved bytes, keeping the
// smallest channel count that represents it without loss at 8 bits.
func Flatten(img image.Image) Raw {
	b := img.Bounds()
	raw := Raw{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: Channels(img),
	}
	raw.Data = make([]byte, raw.Width*raw.Height*raw.Channels)

	// Fast path for 8-bit gray images
	if gray, ok := img.(*image.Gray); ok {
		for y := range raw.Height {
			copy(raw.Data[y*raw.Width:(y+1)*raw.Width], gray.Pix[y*gray.Stride:])
		}
		return raw
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i += put(raw.Data[i:], raw.Channels, img.At(x, y))
		}
	}
	return raw
}

// Channels reports how many 8-bit channels Flatten uses for img.
func Channels(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// put writes c into dst using n channels and returns n.
func put(dst []byte, n int, c color.Color) int {
	switch n {
	case 1:
		dst[0] = color.GrayModel.Convert(c).(color.Gray).Y
	case 3:
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		dst[0], dst[1], dst[2] = nc.R, nc.G, nc.B
	default:
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		dst[0], dst[1], dst[2], dst[3] = nc.R, nc.G, nc.B, nc.A
	}
	return n
}
