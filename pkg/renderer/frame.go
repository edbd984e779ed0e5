package renderer

import (
	"image"

	"github.com/df07/go-ray-kernel/pkg/core"
)

// Frame is a linear RGB float buffer in image order: row 0 is the top row.
// Workers write disjoint tiles concurrently, so Set needs no locking.
type Frame struct {
	Width, Height int
	Pix           []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pix[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pix[y*f.Width+x] = c
}

// ToRGBA gamma-corrects and quantizes the frame to 8-bit RGBA
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(f.At(x, y)))
		}
	}
	return img
}
