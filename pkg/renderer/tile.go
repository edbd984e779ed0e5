package renderer

import (
	"image"
	"time"

	"github.com/df07/go-ray-kernel/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID      int             // Unique tile identifier, row-major
	Bounds  image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Sampler core.Sampler    // Tile-private stream, never shared between goroutines
}

// NewTile creates a tile whose sampler is seeded from seed + id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(seed + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// RenderTile shades every pixel of tile with spp jittered camera rays and
// writes the averages into frame. Only pixels inside tile.Bounds are touched.
func (rt *Raytracer) RenderTile(camera *Camera, tile *Tile, frame *Frame, spp int) TileStat {
	start := time.Now()
	stat := TileStat{ID: tile.ID, Bounds: tile.Bounds}
	invW := 1.0 / float64(frame.Width)
	invH := 1.0 / float64(frame.Height)

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		// Viewport t grows upward while image rows grow downward
		row := float64(frame.Height - 1 - y)
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < spp; sample++ {
				jitter := tile.Sampler.Get2D()
				s := (float64(x) + jitter.X) * invW
				t := (row + jitter.Y) * invH

				color, hit := rt.RayColor(camera.GetRay(s, t, tile.Sampler))
				colorAccum = colorAccum.Add(color)
				stat.Rays++
				if hit {
					stat.Hits++
				}
			}

			frame.Set(x, y, colorAccum.Multiply(1.0/float64(spp)))
		}
	}

	stat.RenderTime = time.Since(start)
	return stat
}
