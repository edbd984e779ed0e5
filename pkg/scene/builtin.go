package scene

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

type builtinScene struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtinScene{
	"default": {"spheres on a checkered ground with a thin-lens camera", NewDefaultScene},
	"cornell": {"Cornell box built from axis-aligned rectangles and boxes", NewCornellScene},
	"heart":   {"placeholder volume probed at t = 1", NewHeartScene},
	"motion":  {"row of spheres with an open shutter and defocus", NewMotionScene},
}

// Builtin creates a fresh copy of the named built-in scene
func Builtin(name string) (*Scene, error) {
	entry, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	return entry.build(), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description of a built-in scene
func Describe(name string) string {
	return builtins[name].description
}
