package material

import (
	"math"

	"github.com/df07/go-ray-kernel/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and point p
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidRGB creates a new solid color texture from components
func NewSolidRGB(red, green, blue float64) *SolidColor {
	return NewSolidColor(core.NewVec3(red, green, blue))
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D checker pattern
type Checker struct {
	Even  Texture
	Odd   Texture
	Scale float64
}

// NewChecker creates a checker texture from two solid colors.
// Scale is the number of cells per world unit times pi.
func NewChecker(even, odd core.Vec3, scale float64) *Checker {
	return &Checker{
		Even:  NewSolidColor(even),
		Odd:   NewSolidColor(odd),
		Scale: scale,
	}
}

// Value selects the sub-texture from the sign of the sine product at p
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
