// Command pixdemo renders pixbuf scenes described in TOML and inspects
// image files through the pixbuf loader.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pixbuf"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Render renderCmd `cmd:"" help:"Render a TOML scene to a PNG file."`
	Info   infoCmd   `cmd:"" help:"Print the dimensions of image files."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("pixdemo"),
		kong.Description("Render pixbuf scenes and inspect images."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixbuf.SetLogger(logger)

	kctx.FatalIfErrorf(kctx.Run(logger))
}
