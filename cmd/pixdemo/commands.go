package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/pixbuf"
)

type renderCmd struct {
	Scene string `arg:"" type:"existingfile" help:"Scene description (TOML)."`
	Out   string `short:"o" default:"out.png" help:"Output PNG file."`
}

func (c *renderCmd) Run(logger *slog.Logger) error {
	scene, err := LoadScene(c.Scene)
	if err != nil {
		return err
	}

	buf, err := Render(scene, filepath.Dir(c.Scene))
	if err != nil {
		return err
	}
	defer buf.Destroy()

	if err := writePNG(c.Out, buf); err != nil {
		return err
	}

	logger.Info("scene rendered", "scene", c.Scene, "out", c.Out,
		"width", buf.Width(), "height", buf.Height(), "ops", len(scene.Ops))
	return nil
}

func writePNG(path string, buf *pixbuf.PixelBuffer) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, buf.ToNRGBA()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}

type infoCmd struct {
	Paths []string `arg:"" help:"Image files to inspect."`
}

func (c *infoCmd) Run(logger *slog.Logger) error {
	var errCount int
	for _, p := range c.Paths {
		buf, err := pixbuf.LoadImage(p)
		if err != nil {
			errCount++
			logger.Error("could not load image", "file", p, "kind", pixbuf.KindOf(err), "error", err)
			continue
		}
		logger.Info("image", "file", p, "width", buf.Width(), "height", buf.Height())
		buf.Destroy()
	}

	if errCount > 0 {
		return fmt.Errorf("%d of %d images failed to load", errCount, len(c.Paths))
	}
	return nil
}
