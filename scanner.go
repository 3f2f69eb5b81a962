package flatbed

import (
	"fmt"
	"image"
	"os"

	"github.com/tsawler/flatbed/filter"
	"github.com/tsawler/flatbed/format"
	"github.com/tsawler/flatbed/model"
	"github.com/tsawler/flatbed/reader"
	"github.com/tsawler/flatbed/sheet"
	"github.com/tsawler/flatbed/warp"
)

// nearDegenerateSpan is the target dimension, in pixels, below which a scan
// is flagged as barely usable.
const nearDegenerateSpan = 8

// Scanner provides a fluent interface for cropping a photographed document.
// Each configuration method returns a new Scanner instance, making it safe
// for concurrent use and allowing method chaining.
type Scanner struct {
	// Source
	filename string
	img      *image.RGBA

	// Crop region
	corners    model.CornerSet
	hasCorners bool

	// Configuration
	options ScanOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Scanner with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (s *Scanner) clone() *Scanner {
	return &Scanner{
		filename:   s.filename,
		img:        s.img,
		corners:    s.corners,
		hasCorners: s.hasCorners,
		options:    s.options.clone(),
		err:        s.err,
	}
}

// ============================================================================
// Configuration Methods (return new Scanner instance)
// ============================================================================

// Corners sets the marked document corners in source-pixel space, ordered
// top-left, top-right, bottom-right, bottom-left. Order is positional: a
// rotated order produces a rotated result, with no error.
//
// Example:
//
//	doc, _, err := flatbed.Open("photo.jpg").Corners(cs).Scan()
func (s *Scanner) Corners(corners model.CornerSet) *Scanner {
	newScan := s.clone()
	newScan.corners = corners
	newScan.hasCorners = true
	return newScan
}

// Page selects which page of a PDF source to render (1-indexed). It has no
// effect on plain image sources.
func (s *Scanner) Page(page int) *Scanner {
	newScan := s.clone()
	if page < 1 {
		newScan.err = fmt.Errorf("page %d out of range, pages are 1-indexed", page)
		return newScan
	}
	newScan.options.page = page
	return newScan
}

// DPI sets the render resolution for a PDF source. It has no effect on
// plain image sources.
func (s *Scanner) DPI(dpi int) *Scanner {
	newScan := s.clone()
	if dpi < 1 {
		newScan.err = fmt.Errorf("dpi %d out of range", dpi)
		return newScan
	}
	newScan.options.dpi = dpi
	return newScan
}

// Rotate turns the cropped result by the given number of degrees, which
// must be a multiple of 90.
func (s *Scanner) Rotate(degrees int) *Scanner {
	newScan := s.clone()
	if degrees%90 != 0 {
		newScan.err = fmt.Errorf("rotate: %d degrees is not a quarter turn", degrees)
		return newScan
	}
	newScan.options.rotation += degrees
	return newScan
}

// Grayscale converts the cropped result to grayscale.
func (s *Scanner) Grayscale() *Scanner {
	return s.adjust(model.Adjustment{Op: filter.OpGrayscale})
}

// Invert inverts the cropped result's colors.
func (s *Scanner) Invert() *Scanner {
	return s.adjust(model.Adjustment{Op: filter.OpInvert})
}

// Brightness shifts the cropped result's channels by delta.
func (s *Scanner) Brightness(delta float64) *Scanner {
	return s.adjust(model.Adjustment{Op: filter.OpBrightness, Value: delta})
}

// Contrast scales the cropped result's contrast by factor.
func (s *Scanner) Contrast(factor float64) *Scanner {
	return s.adjust(model.Adjustment{Op: filter.OpContrast, Value: factor})
}

// Sharpen applies an unsharp kernel to the cropped result.
func (s *Scanner) Sharpen() *Scanner {
	return s.adjust(model.Adjustment{Op: filter.OpSharpen})
}

// Adjust appends an already-recorded adjustment sequence, as stored on a
// document or read from a plan file.
func (s *Scanner) Adjust(adjust ...model.Adjustment) *Scanner {
	newScan := s.clone()
	newScan.options.adjust = append(newScan.options.adjust, adjust...)
	return newScan
}

func (s *Scanner) adjust(a model.Adjustment) *Scanner {
	newScan := s.clone()
	newScan.options.adjust = append(newScan.options.adjust, a)
	return newScan
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Scan crops the source through the configured corners and applies any
// configured rotation and adjustments.
//
// Returns the scanned document, any warnings encountered during processing,
// and an error if the scan failed. Warnings indicate non-fatal issues
// (e.g., corners outside the source raster) where scanning succeeded but
// the result may be imperfect.
//
// Example:
//
//	doc, warnings, err := flatbed.Open("photo.jpg").Corners(cs).Scan()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", flatbed.FormatWarnings(warnings))
//	}
func (s *Scanner) Scan() (*model.Document, []Warning, error) {
	if s.err != nil {
		return nil, nil, s.err
	}

	src, err := s.loadSource()
	if err != nil {
		return nil, nil, err
	}

	corners := s.corners
	if !s.hasCorners {
		b := src.Bounds()
		corners = model.RectCorners(float64(b.Dx()), float64(b.Dy()))
	}

	var warnings []Warning
	b := src.Bounds()
	if !corners.InBounds(float64(b.Dx()), float64(b.Dy())) {
		warnings = append(warnings, Warning{
			Code:    WarnCornersOutOfBounds,
			Message: "one or more corners lie outside the source image",
		})
	}
	if w, h := corners.TargetWidth(), corners.TargetHeight(); !corners.IsDegenerate() &&
		(w < nearDegenerateSpan || h < nearDegenerateSpan) {
		warnings = append(warnings, Warning{
			Code:    WarnNearDegenerate,
			Message: fmt.Sprintf("target rectangle is only %.0f x %.0f px", w, h),
		})
	}

	out, err := warp.Rectify(src, corners)
	if err != nil {
		return nil, warnings, err
	}

	if transparentShare(out) > 0.5 {
		warnings = append(warnings, Warning{
			Code:    WarnLowCoverage,
			Message: "more than half of the crop received no source pixels",
		})
	}

	if s.options.rotation%360 != 0 {
		out, err = filter.Rotate(out, s.options.rotation)
		if err != nil {
			return nil, warnings, err
		}
	}
	if len(s.options.adjust) > 0 {
		out, err = filter.Apply(out, s.options.adjust)
		if err != nil {
			return nil, warnings, err
		}
	}

	doc := model.NewDocument(out, corners)
	doc.Rotation = s.options.rotation
	doc.Adjust = append([]model.Adjustment(nil), s.options.adjust...)
	return doc, warnings, nil
}

// Sheet scans the source and composes the result onto a printable A4 page,
// printed cardWidthCM centimeters wide. This is a terminal operation.
func (s *Scanner) Sheet(cardWidthCM float64) (*image.RGBA, []Warning, error) {
	doc, warnings, err := s.Scan()
	if err != nil {
		return nil, warnings, err
	}

	page, err := composeSheet([]*model.Document{doc}, cardWidthCM)
	if err != nil {
		return nil, warnings, err
	}
	return page, warnings, nil
}

func composeSheet(docs []*model.Document, cardWidthCM float64) (*image.RGBA, error) {
	return sheet.Compose(docs, cardWidthCM)
}

// loadSource produces the source raster: the provided image, a decoded
// image file, or a rendered PDF page, routed by content sniffing with an
// extension fallback.
func (s *Scanner) loadSource() (*image.RGBA, error) {
	if s.img != nil {
		return s.img, nil
	}
	if s.filename == "" {
		return nil, fmt.Errorf("no source specified")
	}

	f, err := s.detectFormat()
	if err != nil {
		return nil, err
	}

	switch {
	case f == format.PDF:
		pdf, err := reader.OpenPDF(s.filename)
		if err != nil {
			return nil, err
		}
		defer pdf.Close()

		page := s.options.page
		if page == 0 {
			page = 1
		}
		if page > pdf.PageCount() {
			return nil, fmt.Errorf("page %d out of range, document has %d pages", page, pdf.PageCount())
		}
		return pdf.RenderPage(page-1, s.options.dpi)

	case f.IsImage():
		return reader.LoadImage(s.filename)

	default:
		return nil, fmt.Errorf("unsupported file format: %s", f)
	}
}

func (s *Scanner) detectFormat() (format.Format, error) {
	file, err := os.Open(s.filename)
	if err != nil {
		return format.Unknown, fmt.Errorf("failed to open %s: %w", s.filename, err)
	}
	defer file.Close()

	f, err := format.DetectFromReader(file)
	if err != nil {
		return format.Unknown, err
	}
	if f == format.Unknown {
		f = format.Detect(s.filename)
	}
	return f, nil
}

// transparentShare reports the fraction of pixels with zero alpha.
func transparentShare(img *image.RGBA) float64 {
	total := img.Bounds().Dx() * img.Bounds().Dy()
	if total == 0 {
		return 0
	}
	blank := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0 {
			blank++
		}
	}
	return float64(blank) / float64(total)
}
