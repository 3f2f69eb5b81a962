// Package flatbed provides a fluent API for cropping photographed documents
// flat and laying them out on printable sheets.
//
// Basic usage:
//
//	doc, warnings, err := flatbed.Open("photo.jpg").
//	    Corners(corners).
//	    Scan()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", flatbed.FormatWarnings(warnings))
//	}
//
// With post-processing:
//
//	doc, _, err := flatbed.Open("scan.pdf").
//	    Page(2).
//	    Corners(corners).
//	    Rotate(90).
//	    Grayscale().
//	    Contrast(1.2).
//	    Scan()
//
// For advanced use cases, the lower-level warp, filter and sheet packages
// are also available.
package flatbed

import (
	"image"

	"github.com/tsawler/flatbed/model"
)

// Open points a Scanner at an image or PDF file. The file is not touched
// until a terminal operation runs.
//
// Example:
//
//	doc, warnings, err := flatbed.Open("photo.jpg").Corners(cs).Scan()
func Open(filename string) *Scanner {
	return &Scanner{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromImage creates a Scanner over an already-decoded raster. The caller
// keeps ownership of img; scanning never modifies it.
//
// Example:
//
//	doc, warnings, err := flatbed.FromImage(img).Corners(cs).Scan()
func FromImage(img *image.RGBA) *Scanner {
	return &Scanner{
		img:     img,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustScan is a helper that wraps a call to Scan() or Sheet() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	doc := flatbed.MustScan(flatbed.Open("photo.jpg").Corners(cs).Scan())
func MustScan[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Sheet composes one or two already-scanned documents onto a printable A4
// page, each printed cardWidthCM centimeters wide.
func Sheet(cardWidthCM float64, docs ...*model.Document) (*image.RGBA, error) {
	return composeSheet(docs, cardWidthCM)
}
