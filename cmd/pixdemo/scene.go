package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pixbuf"
)

// Scene is a drawing described in TOML:
//
//	width = 320
//	height = 240
//	background = "#202030"
//
//	[[op]]
//	kind = "fill_circle"
//	x = 160
//	y = 120
//	r = 40
//	color = "#FF800080"
type Scene struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Ops        []Op   `toml:"op"`
}

// Op is one drawing operation. Which fields apply depends on Kind:
//
//   - rect, fill_rect: X, Y, W, H, Color
//   - circle, fill_circle: X, Y (center), R, Color
//   - image: Path, X, Y, Flip
//   - sub_image: Path, Src (x, y, width, height), X, Y, Flip
//   - polygon: Xs, Ys, Color
type Op struct {
	Kind  string   `toml:"kind"`
	X     int      `toml:"x"`
	Y     int      `toml:"y"`
	W     int      `toml:"w"`
	H     int      `toml:"h"`
	R     int      `toml:"r"`
	Color string   `toml:"color"`
	Path  string   `toml:"path"`
	Src   []int    `toml:"src"`
	Flip  []string `toml:"flip"`
	Xs    []int    `toml:"xs"`
	Ys    []int    `toml:"ys"`
}

var errScene = errors.New("invalid scene")

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene parses a TOML scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", errScene, err)
	}
	if s.Background == "" {
		s.Background = "#000000"
	}
	return &s, nil
}

// flags converts the op's flip list to pixbuf flags.
func (o Op) flags() (pixbuf.ImageFlag, error) {
	f := pixbuf.FlipNone
	for _, v := range o.Flip {
		switch v {
		case "x", "X":
			f |= pixbuf.FlipX
		case "y", "Y":
			f |= pixbuf.FlipY
		default:
			return 0, fmt.Errorf("%w: unknown flip %q", errScene, v)
		}
	}
	return f, nil
}

// renderer draws scene ops into a buffer, loading each image file once.
type renderer struct {
	dst     *pixbuf.PixelBuffer
	baseDir string
	images  map[string]*pixbuf.PixelBuffer
}

// Render draws s into a new buffer. Relative image paths are resolved
// against baseDir.
func Render(s *Scene, baseDir string) (*pixbuf.PixelBuffer, error) {
	bg, err := pixbuf.ParseHex(s.Background)
	if err != nil {
		return nil, err
	}
	dst, err := pixbuf.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	dst.Clear(bg)

	r := &renderer{dst: dst, baseDir: baseDir, images: make(map[string]*pixbuf.PixelBuffer)}
	defer r.release()

	for i, op := range s.Ops {
		if err := r.draw(op); err != nil {
			dst.Destroy()
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}
	return dst, nil
}

func (r *renderer) draw(op Op) error {
	var c pixbuf.Color
	if op.Color != "" {
		var err error
		if c, err = pixbuf.ParseHex(op.Color); err != nil {
			return err
		}
	}

	switch op.Kind {
	case "rect":
		r.dst.DrawRect(op.X, op.Y, op.W, op.H, c)
	case "fill_rect":
		r.dst.FillRect(op.X, op.Y, op.W, op.H, c)
	case "circle":
		r.dst.DrawCircle(op.X, op.Y, op.R, c)
	case "fill_circle":
		r.dst.FillCircle(op.X, op.Y, op.R, c)
	case "polygon":
		return r.dst.DrawPolygon(op.Xs, op.Ys, c)
	case "image", "sub_image":
		return r.blit(op)
	default:
		return fmt.Errorf("%w: unknown op kind %q", errScene, op.Kind)
	}
	return nil
}

func (r *renderer) blit(op Op) error {
	flags, err := op.flags()
	if err != nil {
		return err
	}
	if op.Kind == "sub_image" && len(op.Src) != 4 {
		return fmt.Errorf("%w: src must be [x, y, width, height]", errScene)
	}
	img, err := r.image(op.Path)
	if err != nil {
		return err
	}

	if op.Kind == "image" {
		r.dst.DrawImage(img, op.X, op.Y, flags)
		return nil
	}

	src := pixbuf.Rect{X: op.Src[0], Y: op.Src[1], Width: op.Src[2], Height: op.Src[3]}
	if src.X < 0 || src.Y < 0 || src.X+src.Width > img.Width() || src.Y+src.Height > img.Height() {
		return fmt.Errorf("%w: src %v outside %dx%d image", errScene, op.Src, img.Width(), img.Height())
	}
	r.dst.DrawSubImage(img, src, op.X, op.Y, flags)
	return nil
}

func (r *renderer) image(path string) (*pixbuf.PixelBuffer, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: missing image path", errScene)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}
	if img, ok := r.images[path]; ok {
		return img, nil
	}
	img, err := pixbuf.LoadImage(path)
	if err != nil {
		return nil, err
	}
	r.images[path] = img
	return img, nil
}

func (r *renderer) release() {
	for _, img := range r.images {
		img.Destroy()
	}
}
