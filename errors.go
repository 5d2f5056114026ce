package pixbuf

import "errors"

// Common errors for pixel buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is below one or
	// the pixel count does not fit in memory.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrUnsupportedImageType is returned when the decoder does not recognize
	// the image data.
	ErrUnsupportedImageType = errors.New("pixbuf: unsupported image type")

	// ErrImageLoad is returned when an image cannot be read or decoded.
	ErrImageLoad = errors.New("pixbuf: failed to load image")

	// ErrUnknownChannels is returned when decoded data has a channel count
	// other than 1 to 4.
	ErrUnknownChannels = errors.New("pixbuf: image channel count not in 1-4")

	// ErrNotImplemented is returned by drawing operations that are declared
	// but not supported yet.
	ErrNotImplemented = errors.New("pixbuf: not implemented")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("pixbuf: invalid color")
)

// ErrorKind classifies pixbuf failures.
type ErrorKind uint8

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindInvalidDimensions means buffer creation was refused.
	KindInvalidDimensions
	// KindUnsupportedImageType means the image format is not recognized.
	KindUnsupportedImageType
	// KindImageLoad means the image could not be read or decoded.
	KindImageLoad
	// KindUnknownChannels means the decoded channel count was not 1-4.
	KindUnknownChannels
	// KindNotImplemented means the operation is not supported yet.
	KindNotImplemented
	// KindInvalidColor means a color string was malformed.
	KindInvalidColor
	// KindUnknown is any error not produced by pixbuf.
	KindUnknown
)

// String returns a short description of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "no error"
	case KindInvalidDimensions:
		return "failed to create pixel buffer due to improper dimensions"
	case KindUnsupportedImageType:
		return "image type unsupported by decoder"
	case KindImageLoad:
		return "failed to load image"
	case KindUnknownChannels:
		return "image had a channel count that was not 1-4"
	case KindNotImplemented:
		return "operation not implemented"
	case KindInvalidColor:
		return "invalid color"
	default:
		return "unknown error"
	}
}

// KindOf reports the kind of err. A nil error is KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidDimensions):
		return KindInvalidDimensions
	case errors.Is(err, ErrUnsupportedImageType):
		return KindUnsupportedImageType
	case errors.Is(err, ErrUnknownChannels):
		return KindUnknownChannels
	case errors.Is(err, ErrImageLoad):
		return KindImageLoad
	case errors.Is(err, ErrNotImplemented):
		return KindNotImplemented
	case errors.Is(err, ErrInvalidColor):
		return KindInvalidColor
	default:
		return KindUnknown
	}
}
