// Package warp implements the projective perspective-correction engine.
//
// A user marks the four corners of a document on a photo; warp derives the
// homography between that quadrilateral and an axis-aligned target rectangle
// and resamples the photo through the inverse mapping to produce a flat,
// de-skewed raster.
//
// # Transform
//
// [ComputeTransform] solves for the eight free coefficients of the 3x3
// homography (the ninth is fixed at 1) from four point correspondences,
// via an 8x8 linear system. [Coefficients.Apply] evaluates the mapping
// for a single point.
//
// # Rectification
//
// [Rectify] drives the whole operation: it sizes the target rectangle from
// the corner distances, solves for the destination-to-source transform
// directly (by swapping the solver's arguments rather than inverting a
// matrix), and fills every destination pixel by nearest-neighbor lookup
// into the source.
//
// Numerical degeneracy is tolerated, not reported: collinear corners make
// the system singular, the coefficients come back NaN, every source lookup
// fails its bounds check and the output stays transparent. Only a target
// rectangle smaller than one pixel is rejected, with
// [DegenerateGeometryError].
package warp
