package scene

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
	"github.com/df07/go-ray-kernel/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is built on one
// goroutine and treated as read-only once handed to a renderer.
type Scene struct {
	Name            string
	Camera          *renderer.Camera
	CameraConfig    renderer.CameraConfig
	World           *geometry.SceneList
	Materials       *material.Palette
	Width           int
	Height          int
	SamplesPerPixel int
}

// newScene creates an empty scene with its own palette
func newScene(name string, width, height, spp int) *Scene {
	return &Scene{
		Name:            name,
		World:           geometry.NewSceneList(),
		Materials:       material.NewPalette(),
		Width:           width,
		Height:          height,
		SamplesPerPixel: spp,
	}
}

// setCamera stores config with the aspect ratio of the scene resolution
func (s *Scene) setCamera(config renderer.CameraConfig) {
	config.AspectRatio = float64(s.Width) / float64(s.Height)
	s.CameraConfig = config
	s.Camera = renderer.NewCamera(config)
}

// WithResolution changes the frame size and rebuilds the camera so the
// viewport keeps matching the image aspect ratio.
func (s *Scene) WithResolution(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width, s.Height = width, height
	s.setCamera(s.CameraConfig)
}

// Options returns renderer defaults with the scene's frame size and samples
func (s *Scene) Options() renderer.Options {
	opts := renderer.DefaultOptions()
	opts.Width = s.Width
	opts.Height = s.Height
	if s.SamplesPerPixel > 0 {
		opts.SamplesPerPixel = s.SamplesPerPixel
	}
	return opts
}

// NewRenderer creates a renderer for the scene
func (s *Scene) NewRenderer(opts renderer.Options) (*renderer.Renderer, error) {
	var world geometry.Hittable
	if s.World != nil {
		world = s.World
	}
	return renderer.NewRenderer(world, s.Materials, s.Camera, opts)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return countPrimitives(s.World.Children())
}

func countPrimitives(children []geometry.Hittable) int {
	count := 0
	for _, child := range children {
		switch c := child.(type) {
		case *geometry.SceneList:
			count += countPrimitives(c.Children())
		case *geometry.Box:
			count += len(c.Faces())
		default:
			count++
		}
	}
	return count
}

// Bounds returns the bounding box of the world over the camera shutter
func (s *Scene) Bounds() (core.AABB, bool) {
	if s.World == nil {
		return core.AABB{}, false
	}
	return s.World.BoundingBox(s.CameraConfig.Time0, s.CameraConfig.Time1)
}
