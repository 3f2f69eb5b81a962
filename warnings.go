package flatbed

import "strings"

// WarningCode identifies a class of non-fatal quality issue noticed while
// scanning.
type WarningCode int

const (
	// WarnCornersOutOfBounds means one or more marked corners lie outside
	// the source raster, so part of the crop is blank.
	WarnCornersOutOfBounds WarningCode = iota + 1
	// WarnNearDegenerate means the corner set barely spans a target
	// rectangle; the output exists but is only a few pixels wide or tall.
	WarnNearDegenerate
	// WarnLowCoverage means more than half of the output pixels received
	// no source sample, usually a sign of badly placed corners.
	WarnLowCoverage
)

// String returns the string representation of the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnCornersOutOfBounds:
		return "corners-out-of-bounds"
	case WarnNearDegenerate:
		return "near-degenerate"
	case WarnLowCoverage:
		return "low-coverage"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue encountered during a scan. The scan
// succeeded, but the result may not be what the user wanted.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return w.Code.String() + ": " + w.Message
}

// FormatWarnings renders a warning list as a single human-readable line.
//
// Example:
//
//	doc, warnings, err := flatbed.Open("photo.jpg").Corners(cs).Scan()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", flatbed.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
