// Package model provides the core data types shared across the flatbed
// library.
//
// # Geometry
//
// Geometric primitives describe positions on rasters:
//
//   - [Point] - 2D point with distance calculation
//   - [CornerSet] - the four ordered corners of a marked document
//
// Points live in a specific coordinate space (source-image pixel space or
// destination/canvas pixel space). The two spaces must never be mixed
// without an explicit transform.
//
// # Documents
//
// The [Document] type represents a rectified scan: the corrected raster plus
// the corner set it was produced from, an optional quarter-turn rotation,
// and the cosmetic adjustments applied after rectification:
//
//	doc := model.NewDocument(img, corners)
//	doc.Rotation = 90
//
// A Document keeps its identity for its whole lifetime; re-running
// rectification or applying filters replaces the raster but never the ID.
package model
