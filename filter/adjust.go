package filter

import "image"

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func newLike(src *image.RGBA) *image.RGBA {
	return image.NewRGBA(src.Bounds())
}

// Grayscale converts every pixel to its Rec. 601 luma, leaving alpha
// untouched.
func Grayscale(src *image.RGBA) *image.RGBA {
	out := newLike(src)
	for i := 0; i < len(src.Pix); i += 4 {
		y := clamp(0.299*float64(src.Pix[i]) + 0.587*float64(src.Pix[i+1]) + 0.114*float64(src.Pix[i+2]))
		out.Pix[i] = y
		out.Pix[i+1] = y
		out.Pix[i+2] = y
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// Invert flips every color channel, leaving alpha untouched.
func Invert(src *image.RGBA) *image.RGBA {
	out := newLike(src)
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i] = 255 - src.Pix[i]
		out.Pix[i+1] = 255 - src.Pix[i+1]
		out.Pix[i+2] = 255 - src.Pix[i+2]
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// Brightness shifts every color channel by delta, clamping to [0, 255].
func Brightness(src *image.RGBA, delta float64) *image.RGBA {
	out := newLike(src)
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i] = clamp(float64(src.Pix[i]) + delta)
		out.Pix[i+1] = clamp(float64(src.Pix[i+1]) + delta)
		out.Pix[i+2] = clamp(float64(src.Pix[i+2]) + delta)
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// Contrast scales every color channel's distance from middle gray by factor.
// A factor of 1 is a no-op, below 1 flattens, above 1 steepens.
func Contrast(src *image.RGBA, factor float64) *image.RGBA {
	out := newLike(src)
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i] = clamp((float64(src.Pix[i])-128)*factor + 128)
		out.Pix[i+1] = clamp((float64(src.Pix[i+1])-128)*factor + 128)
		out.Pix[i+2] = clamp((float64(src.Pix[i+2])-128)*factor + 128)
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}
