// Package filter provides the cosmetic pass applied to a rectified raster:
// grayscale, inversion, brightness, contrast, sharpening and quarter-turn
// rotation.
//
// Every operation allocates and returns a new raster; the input is never
// modified. Operations work directly on the contiguous Pix buffer and do not
// allocate per pixel, so they are cheap enough to re-run whenever the user
// tweaks a setting.
//
// A recorded sequence of adjustments (see [Apply]) travels with a document so
// the same look can be reproduced after a re-crop.
package filter
