package pixbuf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/pixbuf/internal/decode"
)

// LoadImage loads the image at path into a new pixel buffer.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
//
// Returns an error wrapping ErrImageLoad if the file cannot be read or
// decoded, ErrUnsupportedImageType if it is not a supported image format.
// The result always stores 4 channels, whatever the file's channel count.
func LoadImage(path string) (*PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		err = fmt.Errorf("%w: open file: %w", ErrImageLoad, err)
		Logger().Warn("pixbuf: load failed", "path", path, "err", err)
		return nil, err
	}
	defer func() { _ = f.Close() }()

	buf, err := Decode(f)
	if err != nil {
		Logger().Warn("pixbuf: load failed", "path", path, "err", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	Logger().Debug("pixbuf: image loaded", "path", path, "width", buf.width, "height", buf.height)
	return buf, nil
}

// Decode decodes an image from r into a new pixel buffer, auto-detecting
// the format.
func Decode(r io.Reader) (*PixelBuffer, error) {
	raw, err := decode.Decode(r)
	switch {
	case errors.Is(err, decode.ErrUnsupportedType):
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImageType, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrImageLoad, err)
	}

	return FromRaw(raw.Data, raw.Width, raw.Height, raw.Channels)
}

// FromRaw builds a pixel buffer from interleaved 8-bit channel data.
//
// Each pixel in data takes channels bytes, converted as:
//   - 1 channel: gray value replicated into R, G, B; alpha 0xFF
//   - 2 channels: gray value replicated into R, G, B; alpha from the second byte
//   - 3 channels: R, G, B; alpha 0xFF
//   - 4 channels: R, G, B, A
//
// Returns an error wrapping ErrUnknownChannels for any other channel count
// and ErrImageLoad if data holds fewer than width*height pixels.
func FromRaw(data []byte, width, height, channels int) (*PixelBuffer, error) {
	buf, err := New(width, height)
	if err != nil {
		return nil, err
	}

	if channels < 1 || channels > 4 {
		buf.Destroy()
		err := fmt.Errorf("%w: got %d", ErrUnknownChannels, channels)
		Logger().Warn("pixbuf: raw conversion failed", "channels", channels, "err", err)
		return nil, err
	}
	if need := width * height * channels; len(data) < need {
		buf.Destroy()
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrImageLoad, len(data), need)
	}

	for i := range buf.pix {
		p := data[i*channels : (i+1)*channels]
		buf.pix[i] = pixelFromChannels(p)
	}
	return buf, nil
}

// pixelFromChannels packs one pixel of 1 to 4 channel bytes.
func pixelFromChannels(p []byte) Color {
	switch len(p) {
	case 1:
		return RGBA8(p[0], p[0], p[0], 0xFF)
	case 2:
		return RGBA8(p[0], p[0], p[0], p[1])
	case 3:
		return RGBA8(p[0], p[1], p[2], 0xFF)
	default:
		return RGBA8(p[0], p[1], p[2], p[3])
	}
}
