package flatbed

import "github.com/tsawler/flatbed/model"

// ScanOptions holds configuration for a scan.
type ScanOptions struct {
	// PDF source selection (1-indexed in API, stored as-is)
	page int
	dpi  int

	// Post-crop processing
	rotation int
	adjust   []model.Adjustment
}

// defaultOptions returns the default scan options.
func defaultOptions() ScanOptions {
	return ScanOptions{
		page:     0, // 0 means first page
		dpi:      0, // 0 means DefaultDPI
		rotation: 0,
		adjust:   nil,
	}
}

// clone creates a deep copy of ScanOptions.
func (o ScanOptions) clone() ScanOptions {
	newOpts := ScanOptions{
		page:     o.page,
		dpi:      o.dpi,
		rotation: o.rotation,
	}

	// Deep copy adjustment slice
	if o.adjust != nil {
		newOpts.adjust = make([]model.Adjustment, len(o.adjust))
		copy(newOpts.adjust, o.adjust)
	}

	return newOpts
}
