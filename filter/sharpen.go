package filter

import "image"

// Sharpen applies a 3x3 unsharp kernel
//
//	 0 -1  0
//	-1  5 -1
//	 0 -1  0
//
// to every color channel. Edge pixels reuse their nearest in-bounds
// neighbor. Alpha passes through unchanged.
func Sharpen(src *image.RGBA) *image.RGBA {
	out := newLike(src)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= w {
			return w - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= h {
			return h - 1
		}
		return y
	}

	at := func(x, y int) []uint8 {
		i := clampY(y)*src.Stride + clampX(x)*4
		return src.Pix[i : i+4]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := at(x, y)
			up := at(x, y-1)
			down := at(x, y+1)
			left := at(x-1, y)
			right := at(x+1, y)

			o := y*out.Stride + x*4
			for c := 0; c < 3; c++ {
				v := 5*float64(center[c]) - float64(up[c]) - float64(down[c]) - float64(left[c]) - float64(right[c])
				out.Pix[o+c] = clamp(v)
			}
			out.Pix[o+3] = center[3]
		}
	}
	return out
}
