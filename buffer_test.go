package pixbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 100, 50, nil},
		{"1x1 minimum", 1, 1, nil},
		{"single row", 640, 1, nil},
		{"zero width", 0, 100, ErrInvalidDimensions},
		{"zero height", 100, 0, ErrInvalidDimensions},
		{"negative width", -1, 100, ErrInvalidDimensions},
		{"negative height", 100, -1, ErrInvalidDimensions},
		{"too many pixels", 1 << 15, 1 << 14, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := New(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil {
				if buf != nil {
					t.Errorf("New(%d, %d) returned a buffer alongside an error", tt.width, tt.height)
				}
				return
			}
			if buf.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", buf.Width(), tt.width)
			}
			if buf.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", buf.Height(), tt.height)
			}
			if buf.Channels() != 4 {
				t.Errorf("Channels() = %d, want 4", buf.Channels())
			}
			if len(buf.Pixels()) != tt.width*tt.height {
				t.Errorf("len(Pixels()) = %d, want %d", len(buf.Pixels()), tt.width*tt.height)
			}
		})
	}
}

func TestNewErrorMentionsDimensions(t *testing.T) {
	_, err := New(0, 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0x12")
}

func TestDestroy(t *testing.T) {
	buf, err := New(8, 4)
	require.NoError(t, err)

	buf.Destroy()
	assert.Equal(t, 0, buf.Width())
	assert.Equal(t, 0, buf.Height())
	assert.Equal(t, 0, buf.Channels())
	assert.Nil(t, buf.Pixels())
	assert.True(t, buf.IsEmpty())

	// Idempotent
	buf.Destroy()
	assert.Equal(t, 0, buf.Width())
	assert.True(t, buf.IsEmpty())

	var nilBuf *PixelBuffer
	nilBuf.Destroy()
	assert.True(t, nilBuf.IsEmpty())
}

func TestPixel(t *testing.T) {
	buf, err := New(3, 2)
	require.NoError(t, err)
	buf.Pixels()[1*3+2] = Red

	c, ok := buf.Pixel(2, 1)
	assert.True(t, ok)
	assert.Equal(t, Red, c)

	for _, p := range []struct{ x, y int }{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		_, ok := buf.Pixel(p.x, p.y)
		assert.False(t, ok, "Pixel(%d, %d) should be out of bounds", p.x, p.y)
	}
}

func TestClone(t *testing.T) {
	buf, err := New(4, 4)
	require.NoError(t, err)
	buf.Clear(Blue)

	cp := buf.Clone()
	cp.Clear(Green)

	assert.Equal(t, buf.Width(), cp.Width())
	assert.Equal(t, buf.Channels(), cp.Channels())
	c, _ := buf.Pixel(0, 0)
	assert.Equal(t, Blue, c, "clone must not share pixels")
}

// newFilled creates a w x h buffer cleared to c.
func newFilled(t *testing.T, w, h int, c Color) *PixelBuffer {
	t.Helper()
	buf, err := New(w, h)
	require.NoError(t, err)
	buf.Clear(c)
	return buf
}
