package warp

import (
	"fmt"
	"image"
	"math"

	"github.com/tsawler/flatbed/model"
)

// DegenerateGeometryError reports a corner set whose rectification target
// collapses below one pixel in either dimension.
type DegenerateGeometryError struct {
	Width, Height float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate corner set: target rectangle %.2f x %.2f px", e.Width, e.Height)
}

// Rectify resamples src through the inverse projective transform defined by
// corners, producing a flat, axis-aligned raster.
//
// The target rectangle is sized from the corner distances: width is the
// longer of the top and bottom sides, height the longer of the left and
// right sides. Every output pixel is filled by mapping its coordinate back
// into source space and copying the nearest source pixel. Lookups that land
// outside the source are skipped, leaving the output pixel transparent;
// that is accepted behavior when corners are marked outside the true
// document bounds, not an error.
//
// Rectify allocates a fresh output raster on every call and holds no state
// between calls, so concurrent invocations need no locking. The only error
// is a target rectangle smaller than one pixel (see
// [DegenerateGeometryError]).
func Rectify(src *image.RGBA, corners model.CornerSet) (*image.RGBA, error) {
	w := corners.TargetWidth()
	h := corners.TargetHeight()

	outW := int(math.Round(w))
	outH := int(math.Round(h))
	if outW < 1 || outH < 1 {
		return nil, &DegenerateGeometryError{Width: w, Height: h}
	}

	// Solve destination->source directly instead of inverting the forward
	// matrix; simpler and numerically adequate at this scale.
	dst := model.RectCorners(w, h)
	inv := ComputeTransform([4]model.Point(dst), [4]model.Point(corners))

	out := image.NewRGBA(image.Rect(0, 0, outW, outH))

	bounds := src.Bounds()
	srcW := float64(bounds.Dx())
	srcH := float64(bounds.Dy())

	for y := 0; y < outH; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+outW*4]
		fy := float64(y)
		for x := 0; x < outW; x++ {
			p := inv.Apply(float64(x), fy)
			sx := math.Round(p.X)
			sy := math.Round(p.Y)
			// NaN coordinates from a singular transform fail this
			// check and the pixel stays transparent.
			if !(sx >= 0 && sx < srcW && sy >= 0 && sy < srcH) {
				continue
			}
			si := src.PixOffset(bounds.Min.X+int(sx), bounds.Min.Y+int(sy))
			copy(row[x*4:x*4+4], src.Pix[si:si+4])
		}
	}

	return out, nil
}
