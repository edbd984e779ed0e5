package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// loadScene resolves name to a built-in scene, or loads it from disk when it
// names a .json file.
func loadScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("missing scene name")
	}
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return scene.LoadFile(name)
	}
	return scene.Builtin(name)
}

// parseVec3 parses "x,y,z" into a vector
func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", value)
	}

	var coords [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid component %d in %q: %w", i, value, err)
		}
		coords[i] = f
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Size", "Primitives", "Description"})
	for _, name := range scene.Names() {
		s, err := scene.Builtin(name)
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			fmt.Sprintf("%d", s.GetPrimitiveCount()),
			scene.Describe(name),
		})
	}
	table.Render()
	return nil
}
