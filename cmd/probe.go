package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/scene"
	"github.com/urfave/cli"
)

// Probe casts a single ray into a scene and prints the nearest hit.
func Probe(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	// By default the ray leaves the camera towards its look-at point
	origin := sc.CameraConfig.LookFrom
	if value := ctx.String("origin"); value != "" {
		if origin, err = parseVec3(value); err != nil {
			return err
		}
	}
	direction := sc.CameraConfig.LookAt.Subtract(origin)
	if value := ctx.String("dir"); value != "" {
		if direction, err = parseVec3(value); err != nil {
			return err
		}
	}
	if direction.LengthSquared() == 0 {
		return fmt.Errorf("probe direction must be non-zero")
	}

	ray := core.NewRayAtTime(origin, direction, ctx.Float64("time"))
	rec, ok := probeScene(sc, ray, ctx.Float64("tmin"), ctx.Float64("tmax"))
	logger.Debugf("probe %v -> %v hit=%t", origin, direction, ok)
	writeProbe(ctx.App.Writer, sc, ray, rec, ok)
	return nil
}

// probeScene intersects ray with the scene world. A non-positive tMax
// means unbounded.
func probeScene(sc *scene.Scene, ray core.Ray, tMin, tMax float64) (geometry.HitRecord, bool) {
	var rec geometry.HitRecord
	if sc.World == nil {
		return rec, false
	}
	if tMax <= 0 {
		tMax = math.Inf(1)
	}
	ok := sc.World.Hit(ray, tMin, tMax, &rec)
	return rec, ok
}

func writeProbe(w io.Writer, sc *scene.Scene, ray core.Ray, rec geometry.HitRecord, ok bool) {
	if !ok {
		fmt.Fprintf(w, "no hit along %v\n", ray.Direction)
		return
	}

	material := "none"
	if entry, found := sc.Materials.Entry(rec.Material); found {
		material = entry.Name
	}
	fmt.Fprintf(w, "t:        %.6f\n", rec.T)
	fmt.Fprintf(w, "point:    %v\n", rec.Point)
	fmt.Fprintf(w, "normal:   %v\n", rec.Normal)
	fmt.Fprintf(w, "front:    %t\n", rec.FrontFace)
	fmt.Fprintf(w, "uv:       %.4f %.4f\n", rec.U, rec.V)
	fmt.Fprintf(w, "material: %s (%d)\n", material, rec.Material)
}
