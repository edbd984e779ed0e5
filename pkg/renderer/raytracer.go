package renderer

import (
	"image/color"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
)

// Sky gradient endpoints for rays that miss the world
var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// Raytracer shades single camera rays against a frozen world. It only
// reads the world and palette, so one Raytracer serves every worker.
type Raytracer struct {
	world        geometry.Hittable
	palette      *material.Palette
	tMin, tMax   float64
	shadeNormals bool
}

// NewRaytracer creates a raytracer over world. A nil palette shades every
// hit with the missing-material color.
func NewRaytracer(world geometry.Hittable, palette *material.Palette, opts Options) *Raytracer {
	if palette == nil {
		palette = material.NewPalette()
	}
	return &Raytracer{
		world:        world,
		palette:      palette,
		tMin:         opts.TMin,
		tMax:         opts.TMax,
		shadeNormals: opts.ShadeNormals,
	}
}

// RayColor returns the linear color seen along ray and whether it hit anything
func (rt *Raytracer) RayColor(ray core.Ray) (core.Vec3, bool) {
	var rec geometry.HitRecord
	if !rt.world.Hit(ray, rt.tMin, rt.tMax, &rec) {
		return backgroundGradient(ray), false
	}

	if rt.shadeNormals {
		return rec.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5), true
	}

	// Headlight shading: the stored normal always faces the viewer
	facing := max(0, rec.Normal.Dot(ray.Direction.Normalize().Negate()))
	albedo := rt.palette.Color(rec.Material, rec.U, rec.V, rec.Point)
	return albedo.Multiply(0.5 + 0.5*facing), true
}

// backgroundGradient returns a gradient color based on ray direction
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first so negative components never reach the fractional power
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
