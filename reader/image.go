package reader

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Additional image formats from the x repository.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered image format from r and normalizes the result
// to RGBA.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}
	return ToRGBA(img), nil
}

// LoadImage decodes the image file at path into an RGBA raster.
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening image %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error reading image %s: %w", path, err)
	}
	return img, nil
}

// ToRGBA converts an arbitrary decoded image to *image.RGBA with its origin
// at (0, 0). An image that already has the right layout is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
