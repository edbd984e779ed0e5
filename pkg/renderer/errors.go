package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidRange      = errors.New("renderer: tMin must be non-negative and below tMax")
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrDegenerateCamera  = errors.New("renderer: camera look-from equals look-at or up is parallel to the view direction")
)
