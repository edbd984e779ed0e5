package renderer

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

type TileStat struct {
	// The tile id and the worker that rendered it.
	ID     int
	Worker int

	// Pixel bounds of the tile.
	Bounds image.Rectangle

	// Camera rays cast and how many of them hit the world.
	Rays int64
	Hits int64

	// Render time for the tile
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual tile stats, ordered by tile id.
	Tiles []TileStat

	// Number of workers that served the frame.
	Workers int

	// Totals over all tiles.
	Rays int64
	Hits int64

	// Wall-clock render time for entire frame.
	RenderTime time.Duration
}

// add folds a tile into the totals
func (fs *FrameStats) add(stat TileStat) {
	fs.Tiles = append(fs.Tiles, stat)
	fs.Rays += stat.Rays
	fs.Hits += stat.Hits
}

// HitRatio returns the fraction of camera rays that hit the world
func (fs FrameStats) HitRatio() float64 {
	if fs.Rays == 0 {
		return 0
	}
	return float64(fs.Hits) / float64(fs.Rays)
}

// RaysPerSecond returns camera ray throughput over the wall-clock time
func (fs FrameStats) RaysPerSecond() float64 {
	if fs.RenderTime <= 0 {
		return 0
	}
	return float64(fs.Rays) / fs.RenderTime.Seconds()
}

// WriteTable renders per-worker totals as a text table.
// Listing every tile would drown the output for large frames.
func (fs FrameStats) WriteTable(w io.Writer) {
	type workerTotals struct {
		tiles      int
		rays, hits int64
		busy       time.Duration
	}
	totals := make([]workerTotals, fs.Workers)
	for _, stat := range fs.Tiles {
		if stat.Worker < 0 || stat.Worker >= len(totals) {
			continue
		}
		wt := &totals[stat.Worker]
		wt.tiles++
		wt.rays += stat.Rays
		wt.hits += stat.Hits
		wt.busy += stat.RenderTime
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Rays", "Hits", "% hit", "Busy time"})
	for id, wt := range totals {
		hitPercent := 0.0
		if wt.rays > 0 {
			hitPercent = 100 * float64(wt.hits) / float64(wt.rays)
		}
		table.Append([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", wt.tiles),
			fmt.Sprintf("%d", wt.rays),
			fmt.Sprintf("%d", wt.hits),
			fmt.Sprintf("%02.1f %%", hitPercent),
			wt.busy.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", len(fs.Tiles)),
		fmt.Sprintf("%d", fs.Rays),
		fmt.Sprintf("%d", fs.Hits),
		fmt.Sprintf("%02.1f %%", 100*fs.HitRatio()),
		fs.RenderTime.String(),
	})

	table.Render()
}
