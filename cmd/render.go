package cmd

import (
	"bytes"

	"github.com/df07/go-ray-kernel/pkg/output"
	"github.com/df07/go-ray-kernel/pkg/renderer"
	"github.com/urfave/cli"
)

// RenderFrame renders a still frame of a scene.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	// Zero keeps the scene's own size
	width, height := sc.Width, sc.Height
	if ctx.Int("width") > 0 {
		width = ctx.Int("width")
	}
	if ctx.Int("height") > 0 {
		height = ctx.Int("height")
	}
	sc.WithResolution(width, height)

	opts := sc.Options()
	if ctx.Int("spp") > 0 {
		opts.SamplesPerPixel = ctx.Int("spp")
	}
	opts.NumWorkers = ctx.Int("workers")
	opts.TileSize = ctx.Int("tile")
	if ctx.IsSet("seed") {
		opts.Seed = ctx.Int64("seed")
	}
	opts.ShadeNormals = ctx.Bool("normals")

	// Validate the codec before spending time on the render
	codec, err := output.ParseCodec(ctx.String("codec"))
	if err != nil {
		return err
	}

	r, err := sc.NewRenderer(opts)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q (%d primitives)", sc.Name, sc.GetPrimitiveCount())
	img, frame, stats := r.Render()

	out := ctx.String("out")
	if err := output.WritePNG(out, img); err != nil {
		return err
	}
	logger.Noticef("frame saved as %s", out)

	if raw := ctx.String("raw"); raw != "" {
		if err := output.WriteRaw(raw, frame, codec); err != nil {
			return err
		}
		logger.Noticef("raw frame saved as %s (%s)", raw, codec)
	}

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("frame statistics\n%s", buf.String())
}
