package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/tsawler/flatbed/model"
)

// Page geometry. A4 portrait at 300 DPI; 1 cm prints as 118.11 px.
const (
	PageWidth   = 2480
	PageHeight  = 3508
	PixelsPerCM = 118.11
	DPI         = 300

	// CornerRadius is the rounding applied to each card's corners, in
	// page pixels.
	CornerRadius = 32
)

// ErrCardCount is returned when a sheet is asked to hold zero cards or more
// than two.
var ErrCardCount = errors.New("sheet: a page holds one or two cards")

// Compose renders the documents onto a fresh white A4 page raster.
//
// Every card is scaled (aspect preserved, Catmull-Rom) so its width prints at
// cardWidthCM centimeters, then drawn through a rounded-corner mask. One card
// is centered on the page; two cards are centered on the upper and lower
// thirds.
func Compose(docs []*model.Document, cardWidthCM float64) (*image.RGBA, error) {
	if len(docs) == 0 || len(docs) > 2 {
		return nil, ErrCardCount
	}
	if cardWidthCM <= 0 {
		return nil, fmt.Errorf("sheet: card width %.2f cm is not positive", cardWidthCM)
	}

	cardW := int(math.Round(cardWidthCM * PixelsPerCM))
	if cardW > PageWidth {
		return nil, fmt.Errorf("sheet: card width %.2f cm exceeds the page", cardWidthCM)
	}

	page := image.NewRGBA(image.Rect(0, 0, PageWidth, PageHeight))
	draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	centers := []int{PageHeight / 2}
	if len(docs) == 2 {
		centers = []int{PageHeight / 3, 2 * PageHeight / 3}
	}

	for i, doc := range docs {
		if doc == nil || doc.Image == nil {
			return nil, fmt.Errorf("sheet: card %d has no raster", i)
		}

		src := doc.Image
		sb := src.Bounds()
		if sb.Dx() == 0 || sb.Dy() == 0 {
			return nil, fmt.Errorf("sheet: card %d raster is empty", i)
		}

		cardH := int(math.Round(float64(cardW) * float64(sb.Dy()) / float64(sb.Dx())))
		if cardH < 1 {
			cardH = 1
		}
		if cardH > PageHeight {
			return nil, fmt.Errorf("sheet: card %d is taller than the page at %.2f cm wide", i, cardWidthCM)
		}

		scaled := image.NewRGBA(image.Rect(0, 0, cardW, cardH))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, sb, draw.Src, nil)

		x := (PageWidth - cardW) / 2
		y := centers[i] - cardH/2
		target := image.Rect(x, y, x+cardW, y+cardH)

		mask := roundedMask(cardW, cardH, CornerRadius)
		draw.DrawMask(page, target, scaled, image.Point{}, mask, image.Point{}, draw.Over)
	}

	return page, nil
}

// roundedMask builds an alpha mask that is fully opaque except for the four
// corners, which are cut along a quarter circle of the given radius.
func roundedMask(w, h, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	if radius <= 0 {
		return mask
	}
	if 2*radius > w {
		radius = w / 2
	}
	if 2*radius > h {
		radius = h / 2
	}

	r2 := float64(radius) * float64(radius)
	for y := 0; y < radius; y++ {
		for x := 0; x < radius; x++ {
			dx := float64(radius-x) - 0.5
			dy := float64(radius-y) - 0.5
			if dx*dx+dy*dy <= r2 {
				continue
			}
			mask.Pix[y*mask.Stride+x] = 0
			mask.Pix[y*mask.Stride+(w-1-x)] = 0
			mask.Pix[(h-1-y)*mask.Stride+x] = 0
			mask.Pix[(h-1-y)*mask.Stride+(w-1-x)] = 0
		}
	}
	return mask
}
