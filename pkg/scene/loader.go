package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
	"github.com/df07/go-ray-kernel/pkg/renderer"
)

var (
	ErrUnknownObjectType = errors.New("scene: unknown object type")
	ErrUnknownMaterial   = errors.New("scene: unknown material")
	ErrInvalidObject     = errors.New("scene: invalid object")
	ErrInvalidMaterial   = errors.New("scene: invalid material")
)

// Defaults for fields a scene file may omit
const (
	defaultWidth   = 400
	defaultHeight  = 225
	defaultSamples = 16
	defaultVFov    = 90.0
)

type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type CameraCfg struct {
	LookFrom      Vec3Cfg  `json:"lookFrom"`
	LookAt        Vec3Cfg  `json:"lookAt"`
	Up            *Vec3Cfg `json:"up,omitempty"`
	VFov          float64  `json:"vfov,omitempty"`
	Aperture      float64  `json:"aperture,omitempty"`
	FocusDistance float64  `json:"focusDistance,omitempty"`
	Time0         float64  `json:"time0,omitempty"`
	Time1         float64  `json:"time1,omitempty"`
}

type CheckerCfg struct {
	Even  Vec3Cfg `json:"even"`
	Odd   Vec3Cfg `json:"odd"`
	Scale float64 `json:"scale"`
}

type MaterialCfg struct {
	Name    string      `json:"name"`
	Color   *Vec3Cfg    `json:"color,omitempty"`
	Checker *CheckerCfg `json:"checker,omitempty"`
}

// ObjectCfg holds the union of all object fields; Type selects which apply.
//
//	sphere:           center, radius
//	xy_rect:          x0, x1, y0, y1, k
//	xz_rect:          x0, x1, z0, z1, k
//	yz_rect:          y0, y1, z0, z1, k
//	box:              min, max
//	heart:            center, x0, x1, y0, y1, z0, z1
type ObjectCfg struct {
	Type     string   `json:"type"`
	Material string   `json:"material,omitempty"`
	Center   *Vec3Cfg `json:"center,omitempty"`
	Radius   float64  `json:"radius,omitempty"`
	Min      *Vec3Cfg `json:"min,omitempty"`
	Max      *Vec3Cfg `json:"max,omitempty"`
	X0       float64  `json:"x0,omitempty"`
	X1       float64  `json:"x1,omitempty"`
	Y0       float64  `json:"y0,omitempty"`
	Y1       float64  `json:"y1,omitempty"`
	Z0       float64  `json:"z0,omitempty"`
	Z1       float64  `json:"z1,omitempty"`
	K        float64  `json:"k,omitempty"`
}

type SceneCfg struct {
	Name      string        `json:"name"`
	Width     int           `json:"width,omitempty"`
	Height    int           `json:"height,omitempty"`
	Samples   int           `json:"samples,omitempty"`
	Camera    CameraCfg     `json:"camera"`
	Materials []MaterialCfg `json:"materials"`
	Objects   []ObjectCfg   `json:"objects"`
}

// LoadFile reads a JSON scene description from path
func LoadFile(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load decodes and validates a JSON scene description. Unknown fields are
// rejected so typos do not silently fall back to defaults.
func Load(r io.Reader) (*Scene, error) {
	var cfg SceneCfg
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return Build(cfg)
}

// Build turns a decoded description into a scene
func Build(cfg SceneCfg) (*Scene, error) {
	name := cfg.Name
	if name == "" {
		name = "custom"
	}
	s := newScene(name,
		orDefault(cfg.Width, defaultWidth),
		orDefault(cfg.Height, defaultHeight),
		orDefault(cfg.Samples, defaultSamples),
	)
	if s.Width < 0 || s.Height < 0 || s.SamplesPerPixel < 0 {
		return nil, fmt.Errorf("%w: got %dx%d at %d spp", renderer.ErrInvalidDimensions, s.Width, s.Height, s.SamplesPerPixel)
	}

	camera, err := cfg.Camera.config()
	if err != nil {
		return nil, err
	}
	s.setCamera(camera)

	for i, m := range cfg.Materials {
		texture, err := m.texture()
		if err != nil {
			return nil, fmt.Errorf("material %d (%q): %w", i, m.Name, err)
		}
		s.Materials.Add(m.Name, texture)
	}

	for i, o := range cfg.Objects {
		object, err := o.build(s.Materials)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, o.Type, err)
		}
		s.World.Add(object)
	}

	return s, nil
}

func (c CameraCfg) config() (renderer.CameraConfig, error) {
	up := core.NewVec3(0, 1, 0)
	if c.Up != nil {
		up = c.Up.vec()
	}
	vfov := c.VFov
	if vfov == 0 {
		vfov = defaultVFov
	}

	config := renderer.CameraConfig{
		LookFrom:      c.LookFrom.vec(),
		LookAt:        c.LookAt.vec(),
		Up:            up,
		VFov:          vfov,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
		Time0:         c.Time0,
		Time1:         c.Time1,
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("camera: %w", err)
	}
	if vfov <= 0 || vfov >= 180 {
		return config, fmt.Errorf("camera: vfov must be in (0, 180), got %g", vfov)
	}
	if c.Aperture < 0 || c.FocusDistance < 0 {
		return config, fmt.Errorf("camera: aperture and focus distance must be non-negative")
	}
	return config, nil
}

func (m MaterialCfg) texture() (material.Texture, error) {
	switch {
	case m.Color != nil && m.Checker != nil:
		return nil, fmt.Errorf("%w: color and checker are exclusive", ErrInvalidMaterial)
	case m.Color != nil:
		return material.NewSolidColor(m.Color.vec()), nil
	case m.Checker != nil:
		if m.Checker.Scale == 0 {
			return nil, fmt.Errorf("%w: checker scale must be non-zero", ErrInvalidMaterial)
		}
		return material.NewChecker(m.Checker.Even.vec(), m.Checker.Odd.vec(), m.Checker.Scale), nil
	}
	return nil, fmt.Errorf("%w: needs a color or a checker", ErrInvalidMaterial)
}

func (o ObjectCfg) build(palette *material.Palette) (geometry.Hittable, error) {
	mat := material.NoMaterial
	if o.Material != "" {
		ref, ok := palette.Lookup(o.Material)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownMaterial, o.Material)
		}
		mat = ref
	}

	switch o.Type {
	case "sphere":
		if o.Center == nil {
			return nil, fmt.Errorf("%w: missing center", ErrInvalidObject)
		}
		if !(o.Radius > 0) {
			return nil, fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidObject, o.Radius)
		}
		return geometry.NewSphere(o.Center.vec(), o.Radius, mat), nil

	case "xy_rect":
		if err := checkSpans("x", o.X0, o.X1, "y", o.Y0, o.Y1); err != nil {
			return nil, err
		}
		return geometry.NewXYRect(o.X0, o.X1, o.Y0, o.Y1, o.K, mat), nil

	case "xz_rect":
		if err := checkSpans("x", o.X0, o.X1, "z", o.Z0, o.Z1); err != nil {
			return nil, err
		}
		return geometry.NewXZRect(o.X0, o.X1, o.Z0, o.Z1, o.K, mat), nil

	case "yz_rect":
		if err := checkSpans("y", o.Y0, o.Y1, "z", o.Z0, o.Z1); err != nil {
			return nil, err
		}
		return geometry.NewYZRect(o.Y0, o.Y1, o.Z0, o.Z1, o.K, mat), nil

	case "box":
		if o.Min == nil || o.Max == nil {
			return nil, fmt.Errorf("%w: missing min or max corner", ErrInvalidObject)
		}
		lo, hi := o.Min.vec(), o.Max.vec()
		if err := checkSpans("x", lo.X, hi.X, "y", lo.Y, hi.Y); err != nil {
			return nil, err
		}
		if !(lo.Z < hi.Z) {
			return nil, fmt.Errorf("%w: z span [%g, %g] is empty", ErrInvalidObject, lo.Z, hi.Z)
		}
		return geometry.NewBox(lo, hi, mat), nil

	case "heart":
		if o.Center == nil {
			return nil, fmt.Errorf("%w: missing center", ErrInvalidObject)
		}
		if err := checkSpans("x", o.X0, o.X1, "y", o.Y0, o.Y1); err != nil {
			return nil, err
		}
		if !(o.Z0 < o.Z1) {
			return nil, fmt.Errorf("%w: z span [%g, %g] is empty", ErrInvalidObject, o.Z0, o.Z1)
		}
		return geometry.NewPlaceholderVolume(o.X0, o.X1, o.Y0, o.Y1, o.Z0, o.Z1, o.Center.vec(), mat), nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownObjectType, o.Type)
}

// checkSpans rejects empty or reversed extents on two axes
func checkSpans(axisA string, a0, a1 float64, axisB string, b0, b1 float64) error {
	if !(a0 < a1) {
		return fmt.Errorf("%w: %s span [%g, %g] is empty", ErrInvalidObject, axisA, a0, a1)
	}
	if !(b0 < b1) {
		return fmt.Errorf("%w: %s span [%g, %g] is empty", ErrInvalidObject, axisB, b0, b1)
	}
	return nil
}

func orDefault(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
