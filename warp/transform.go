package warp

import (
	"github.com/tsawler/flatbed/linear"
	"github.com/tsawler/flatbed/model"
)

// Coefficients holds a projective transform as the row-major entries of the
// 3x3 homography matrix [[a,b,c],[d,e,f],[g,h,1]]. The last entry is always
// 1. A Coefficients value is immutable and private to the rectification
// call that produced it; it is never cached or shared.
type Coefficients [9]float64

// ComputeTransform solves for the transform that maps each src corner onto
// the corresponding dst corner.
//
// Each correspondence contributes two rows of the 8x8 system, derived from
// the projective identity dst = H*src with the scale fixed by h22 = 1:
//
//	[sx, sy, 1, 0, 0, 0, -sx*dx, -sy*dx] * [a..h] = dx
//	[0, 0, 0, sx, sy, 1, -sx*dy, -sy*dy] * [a..h] = dy
//
// The source points must not be collinear; a collinear set makes the system
// singular and the returned coefficients carry NaN/Inf (see package doc).
func ComputeTransform(src, dst [4]model.Point) Coefficients {
	a := make([][]float64, 8)
	b := make([]float64, 8)

	for i := 0; i < 4; i++ {
		sx, sy := src[i].X, src[i].Y
		dx, dy := dst[i].X, dst[i].Y
		r := 2 * i

		a[r] = []float64{sx, sy, 1, 0, 0, 0, -sx * dx, -sy * dx}
		b[r] = dx
		a[r+1] = []float64{0, 0, 0, sx, sy, 1, -sx * dy, -sy * dy}
		b[r+1] = dy
	}

	h := linear.Solve(a, b)

	var coeffs Coefficients
	copy(coeffs[:8], h)
	coeffs[8] = 1
	return coeffs
}

// Apply evaluates the projective mapping at (x, y):
//
//	(a*x + b*y + c) / d, (d'*x + e*y + f) / d  with  d = g*x + h*y + 1
//
// Apply is pure. The caller is responsible for the denominator: when it is
// numerically zero the result is Inf/NaN, which downstream bounds checks
// turn into a skipped pixel.
func (c Coefficients) Apply(x, y float64) model.Point {
	d := c[6]*x + c[7]*y + c[8]
	return model.Point{
		X: (c[0]*x + c[1]*y + c[2]) / d,
		Y: (c[3]*x + c[4]*y + c[5]) / d,
	}
}
