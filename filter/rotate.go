package filter

import (
	"fmt"
	"image"
)

// Rotate turns src clockwise by the given number of degrees, which must be a
// multiple of 90. Negative values rotate counter-clockwise. A multiple of 360
// returns a plain copy.
func Rotate(src *image.RGBA, degrees int) (*image.RGBA, error) {
	if degrees%90 != 0 {
		return nil, fmt.Errorf("rotate: %d degrees is not a quarter turn", degrees)
	}

	turns := (degrees / 90) % 4
	if turns < 0 {
		turns += 4
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var out *image.RGBA
	if turns%2 == 0 {
		out = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		out = image.NewRGBA(image.Rect(0, 0, h, w))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := y*src.Stride + x*4

			var dx, dy int
			switch turns {
			case 0:
				dx, dy = x, y
			case 1:
				dx, dy = h-1-y, x
			case 2:
				dx, dy = w-1-x, h-1-y
			case 3:
				dx, dy = y, w-1-x
			}

			di := dy*out.Stride + dx*4
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out, nil
}
