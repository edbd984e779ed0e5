package renderer

import (
	"fmt"
	"image"
	"sort"
	"time"

	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/log"
	"github.com/df07/go-ray-kernel/pkg/material"
)

var logger = log.New("renderer")

// Renderer renders complete frames of a frozen world with a worker pool
type Renderer struct {
	camera    *Camera
	raytracer *Raytracer
	opts      Options
}

// NewRenderer validates the inputs and prepares a renderer. The world and
// palette must not be modified while a frame is rendering.
func NewRenderer(world geometry.Hittable, palette *material.Palette, camera *Camera, opts Options) (*Renderer, error) {
	if world == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	return &Renderer{
		camera:    camera,
		raytracer: NewRaytracer(world, palette, opts),
		opts:      opts,
	}, nil
}

// Options returns the effective options, defaults applied
func (r *Renderer) Options() Options {
	return r.opts
}

// Render traces the whole frame and returns the 8-bit image, the linear
// float frame and per-tile statistics. Output depends only on the world,
// camera and options, never on the number of workers.
func (r *Renderer) Render() (*image.RGBA, *Frame, FrameStats) {
	start := time.Now()
	frame := NewFrame(r.opts.Width, r.opts.Height)
	tiles := NewTileGrid(r.opts.Width, r.opts.Height, r.opts.TileSize, r.opts.Seed)

	numWorkers := min(r.opts.NumWorkers, len(tiles))
	pool := NewWorkerPool(r.raytracer, r.camera, frame, r.opts.SamplesPerPixel, len(tiles), numWorkers)
	logger.Infof("rendering %dx%d at %d spp: %d tiles on %d workers",
		r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	stats := FrameStats{Workers: pool.GetNumWorkers()}
	for range tiles {
		result, _ := pool.GetResult()
		logger.Debugf("tile %d %v done by worker %d in %s",
			result.Stat.ID, result.Stat.Bounds, result.Stat.Worker, result.Stat.RenderTime)
		stats.add(result.Stat)
	}
	pool.Stop()

	sort.Slice(stats.Tiles, func(i, j int) bool {
		return stats.Tiles[i].ID < stats.Tiles[j].ID
	})
	stats.RenderTime = time.Since(start)
	logger.Infof("frame done in %s (%s)", stats.RenderTime, formatThroughput(stats.RaysPerSecond()))

	return frame.ToRGBA(), frame, stats
}

func formatThroughput(raysPerSecond float64) string {
	switch {
	case raysPerSecond >= 1e6:
		return fmt.Sprintf("%.2f Mrays/s", raysPerSecond/1e6)
	case raysPerSecond >= 1e3:
		return fmt.Sprintf("%.2f Krays/s", raysPerSecond/1e3)
	default:
		return fmt.Sprintf("%.0f rays/s", raysPerSecond)
	}
}
