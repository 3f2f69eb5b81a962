// Package reader supplies decoded rasters to the rectification pipeline.
//
// Plain image files (JPEG, PNG, GIF, plus BMP, TIFF and WebP through the
// x/image decoders) are decoded directly and normalized to RGBA. PDF files
// are treated as a source of page images: each page is rendered at a chosen
// DPI through MuPDF, so a document photographed into a PDF can be cropped
// like any other photo.
//
// The package never inspects pixel content; it only gets bytes into an
// *image.RGBA the rest of the library can work on.
package reader
