package model

import (
	"image"

	"github.com/pborman/uuid"
)

// Adjustment records one cosmetic operation applied to a rectified raster.
// Op names the operation ("grayscale", "invert", "brightness", "contrast",
// "sharpen"); Value carries the operation's parameter where one exists.
type Adjustment struct {
	Op    string
	Value float64
}

// Document represents a rectified scan: the corrected raster together with
// the corner set it was cropped from and any post-rectification edits.
type Document struct {
	// ID identifies the document for its whole lifetime. Re-cropping or
	// filtering replaces Image but preserves ID.
	ID string

	// Image is the rectified raster. Owned by the document once set.
	Image *image.RGBA

	// Corners is the source-space corner set the raster was produced from.
	Corners CornerSet

	// Rotation is an optional clockwise rotation in degrees, restricted
	// to quarter turns.
	Rotation int

	// Adjust lists the cosmetic adjustments applied after rectification,
	// in application order.
	Adjust []Adjustment
}

// NewDocument creates a document for a freshly rectified raster.
func NewDocument(img *image.RGBA, corners CornerSet) *Document {
	return &Document{
		ID:      uuid.New(),
		Image:   img,
		Corners: corners,
	}
}

// SetImage replaces the document's raster, preserving its identity.
func (d *Document) SetImage(img *image.RGBA) {
	d.Image = img
}

// Bounds returns the pixel bounds of the document's raster, or the zero
// rectangle if no raster is set.
func (d *Document) Bounds() image.Rectangle {
	if d.Image == nil {
		return image.Rectangle{}
	}
	return d.Image.Bounds()
}
