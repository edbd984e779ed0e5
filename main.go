package main

import (
	"fmt"
	"os"

	"github.com/df07/go-ray-kernel/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raykernel"
	app.Usage = "intersect rays with spheres, rectangles and boxes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error",
		},
	}

	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name or path to a .json scene file",
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Cast jittered primary rays through every pixel of the scene and shade each
hit by its material albedo and the facing ratio of the surface normal. Rays
that miss every object show a sky gradient.

The frame is split into tiles rendered in parallel. Output is deterministic
for a given seed regardless of the worker count.`,
			Flags: []cli.Flag{
				sceneFlag,
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (0 keeps the scene's)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 keeps the scene's)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 keeps the scene's)",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of render workers (0 uses every CPU)",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: 32,
					Usage: "tile edge in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "sampler seed",
				},
				cli.BoolFlag{
					Name:  "normals",
					Usage: "shade hits by their surface normal",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "raw",
					Usage: "also write the linear float frame to this file",
				},
				cli.StringFlag{
					Name:  "codec",
					Value: "zstd",
					Usage: "raw frame compression: none, zstd or snappy",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "probe",
			Usage: "cast one ray into a scene and print the nearest hit",
			Flags: []cli.Flag{
				sceneFlag,
				cli.StringFlag{
					Name:  "origin",
					Usage: "ray origin as x,y,z (defaults to the camera position)",
				},
				cli.StringFlag{
					Name:  "dir",
					Usage: "ray direction as x,y,z (defaults towards the look-at point)",
				},
				cli.Float64Flag{
					Name:  "time",
					Usage: "ray time",
				},
				cli.Float64Flag{
					Name:  "tmin",
					Value: 0.001,
					Usage: "lower bound of the hit interval",
				},
				cli.Float64Flag{
					Name:  "tmax",
					Usage: "upper bound of the hit interval (0 is unbounded)",
				},
			},
			Action: cmd.Probe,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
