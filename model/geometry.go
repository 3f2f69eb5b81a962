package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Corner indices into a CornerSet. The order is fixed and semantically
// meaningful: it drives which corner maps to which destination corner
// during rectification.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// CornerSet is the ordered set of four corners a user marks on a source
// image as the document's boundary, in the fixed order top-left, top-right,
// bottom-right, bottom-left, in source-image pixel space.
//
// The order is positional, not a permutation-free set: a CornerSet with the
// corners in the wrong slots still rectifies without error, but produces a
// rotated or mirrored result.
type CornerSet [4]Point

// RectCorners returns the axis-aligned corner set
// [(0,0), (w,0), (w,h), (0,h)] in the standard corner order.
func RectCorners(w, h float64) CornerSet {
	return CornerSet{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
}

// TargetWidth returns the width of the rectification target rectangle:
// the longer of the top and bottom sides, so no source content is lost
// to compression on the shorter side.
func (c CornerSet) TargetWidth() float64 {
	top := c[TopLeft].Distance(c[TopRight])
	bottom := c[BottomLeft].Distance(c[BottomRight])
	return math.Max(top, bottom)
}

// TargetHeight returns the height of the rectification target rectangle:
// the longer of the left and right sides.
func (c CornerSet) TargetHeight() float64 {
	left := c[TopLeft].Distance(c[BottomLeft])
	right := c[TopRight].Distance(c[BottomRight])
	return math.Max(left, right)
}

// IsDegenerate reports whether the corner set cannot produce a usable
// rectification target: either target dimension rounds below one pixel.
// Collinear or coincident corners that still span a plausible rectangle
// are not caught here; they surface as a singular transform instead.
func (c CornerSet) IsDegenerate() bool {
	return math.Round(c.TargetWidth()) < 1 || math.Round(c.TargetHeight()) < 1
}

// InBounds reports whether every corner lies within the rectangle
// [0,w] x [0,h]. Corners outside the source raster are legal input but
// produce transparent regions in the rectified output.
func (c CornerSet) InBounds(w, h float64) bool {
	for _, p := range c {
		if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
			return false
		}
	}
	return true
}
