package renderer

import (
	"fmt"
	"math"
	"runtime"
)

type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Number of camera rays per pixel.
	SamplesPerPixel int

	// Edge length of a square render tile in pixels. Zero selects DefaultTileSize.
	TileSize int

	// Number of parallel workers. Zero selects runtime.NumCPU().
	NumWorkers int

	// Base seed. Tile i draws from its own stream seeded with Seed + i.
	Seed int64

	// Open interval of accepted hit distances for camera rays.
	TMin float64
	TMax float64

	// Shade hits by their normal instead of their albedo.
	ShadeNormals bool
}

// DefaultTileSize is the tile edge used when Options.TileSize is zero
const DefaultTileSize = 32

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 16,
		TileSize:        DefaultTileSize,
		NumWorkers:      0,
		Seed:            42,
		TMin:            0.001,
		TMax:            math.Inf(1),
	}
}

// Validate checks the options for values that cannot produce a frame
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, o.SamplesPerPixel)
	}
	if !(o.TMin >= 0) || !(o.TMin < o.TMax) {
		return fmt.Errorf("%w: got (%g, %g)", ErrInvalidRange, o.TMin, o.TMax)
	}
	return nil
}

// withDefaults fills zero-valued tuning fields
func (o Options) withDefaults() Options {
	if o.TileSize <= 0 {
		o.TileSize = DefaultTileSize
	}
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	return o
}

// AspectRatio returns width / height
func (o Options) AspectRatio() float64 {
	return float64(o.Width) / float64(o.Height)
}
