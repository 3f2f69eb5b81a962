package filter

import (
	"fmt"
	"image"

	"github.com/tsawler/flatbed/model"
)

// Adjustment operation names as recorded on a document.
const (
	OpGrayscale  = "grayscale"
	OpInvert     = "invert"
	OpBrightness = "brightness"
	OpContrast   = "contrast"
	OpSharpen    = "sharpen"
)

// Apply runs a recorded adjustment sequence over src in order and returns the
// final raster. An empty sequence returns src unchanged. An unknown operation
// name is an error; earlier steps are discarded.
func Apply(src *image.RGBA, adjust []model.Adjustment) (*image.RGBA, error) {
	out := src
	for _, a := range adjust {
		switch a.Op {
		case OpGrayscale:
			out = Grayscale(out)
		case OpInvert:
			out = Invert(out)
		case OpBrightness:
			out = Brightness(out, a.Value)
		case OpContrast:
			out = Contrast(out, a.Value)
		case OpSharpen:
			out = Sharpen(out)
		default:
			return nil, fmt.Errorf("apply adjustments: unknown operation %q", a.Op)
		}
	}
	return out, nil
}
