package warp

import (
	"math"
	"testing"

	"github.com/tsawler/flatbed/model"
)

func pts(c model.CornerSet) [4]model.Point {
	return [4]model.Point(c)
}

func TestComputeTransformIdentity(t *testing.T) {
	rect := pts(model.RectCorners(100, 80))

	coeffs := ComputeTransform(rect, rect)

	want := Coefficients{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if math.Abs(coeffs[i]-want[i]) > 1e-9 {
			t.Errorf("coeffs[%d] = %v, want %v", i, coeffs[i], want[i])
		}
	}
}

func TestComputeTransformTranslation(t *testing.T) {
	src := pts(model.RectCorners(100, 80))
	dst := src
	for i := range dst {
		dst[i].X += 10
		dst[i].Y += 20
	}

	coeffs := ComputeTransform(src, dst)

	want := Coefficients{1, 0, 10, 0, 1, 20, 0, 0, 1}
	for i := range want {
		if math.Abs(coeffs[i]-want[i]) > 1e-9 {
			t.Errorf("coeffs[%d] = %v, want %v", i, coeffs[i], want[i])
		}
	}
}

func TestComputeTransformMapsCorrespondences(t *testing.T) {
	// Whatever the transform looks like internally, it must reproduce the
	// four correspondences it was solved from.
	src := [4]model.Point{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 150}, {X: 0, Y: 150}}
	dst := [4]model.Point{{X: 31, Y: 27}, {X: 410, Y: 63}, {X: 389, Y: 340}, {X: 55, Y: 302}}

	coeffs := ComputeTransform(src, dst)

	for i := range src {
		got := coeffs.Apply(src[i].X, src[i].Y)
		if math.Abs(got.X-dst[i].X) > 1e-6 || math.Abs(got.Y-dst[i].Y) > 1e-6 {
			t.Errorf("Apply(src[%d]) = (%v, %v), want (%v, %v)",
				i, got.X, got.Y, dst[i].X, dst[i].Y)
		}
	}
}

func TestComputeTransformFixesNinthCoefficient(t *testing.T) {
	src := [4]model.Point{{X: 10, Y: 10}, {X: 90, Y: 15}, {X: 85, Y: 70}, {X: 12, Y: 66}}
	dst := pts(model.RectCorners(80, 60))

	coeffs := ComputeTransform(src, dst)
	if coeffs[8] != 1 {
		t.Errorf("coeffs[8] = %v, want the fixed 1", coeffs[8])
	}
}

func TestApplyZeroDenominator(t *testing.T) {
	// g = 1, so the denominator vanishes along x = -1. No panic; the
	// caller sees Inf/NaN and treats the pixel as out of range.
	coeffs := Coefficients{1, 0, 0, 0, 1, 0, 1, 0, 1}

	p := coeffs.Apply(-1, 5)
	if !math.IsInf(p.X, 0) && !math.IsNaN(p.X) {
		t.Errorf("Apply at zero denominator: X = %v, want Inf or NaN", p.X)
	}
}

func TestComputeTransformCollinearDestination(t *testing.T) {
	// Three collinear points in either configuration make the system
	// singular. The contract is NaN/Inf coefficients, not an error.
	src := pts(model.RectCorners(10, 30))
	dst := [4]model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}

	coeffs := ComputeTransform(src, dst)

	sawBad := false
	for _, v := range coeffs[:8] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			sawBad = true
		}
	}
	if !sawBad {
		t.Errorf("ComputeTransform() with collinear destination = %v, want NaN/Inf entries", coeffs)
	}
}
