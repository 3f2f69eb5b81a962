package reader

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the render resolution used when the caller does not pick
// one. It matches the fixed print scale of the sheet composer.
const DefaultDPI = 300

// PDF renders pages of a PDF document as rasters.
type PDF struct {
	doc  *fitz.Document
	path string
}

// OpenPDF opens the PDF document at path.
func OpenPDF(path string) (*PDF, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF %s: %w", path, err)
	}
	return &PDF{doc: doc, path: path}, nil
}

// PageCount returns the number of pages in the document.
func (p *PDF) PageCount() int {
	return p.doc.NumPage()
}

// RenderPage rasterizes the zero-based page at the given DPI. Each call
// opens its own MuPDF handle so concurrent renders do not contend on the
// shared document.
func (p *PDF) RenderPage(index int, dpi int) (*image.RGBA, error) {
	if index < 0 || index >= p.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range, document has %d pages", index, p.doc.NumPage())
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	worker, err := fitz.New(p.path)
	if err != nil {
		return nil, fmt.Errorf("error reopening PDF %s: %w", p.path, err)
	}
	defer worker.Close()

	img, err := worker.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("error rendering page %d of %s: %w", index, p.path, err)
	}
	return ToRGBA(img), nil
}

// Close releases the underlying document handle.
func (p *PDF) Close() error {
	return p.doc.Close()
}
