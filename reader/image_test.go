package reader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int, c color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	want := color.RGBA{R: 200, G: 30, B: 90, A: 255}
	path := writeTestPNG(t, 40, 25, want)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}

	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 25 {
		t.Errorf("LoadImage() bounds = %dx%d, want 40x25", b.Dx(), b.Dy())
	}
	if got := img.RGBAAt(20, 12); got != want {
		t.Errorf("LoadImage() pixel = %v, want %v", got, want)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("LoadImage() on a missing file succeeded, want error")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image at all"))); err == nil {
		t.Error("Decode() on garbage succeeded, want error")
	}
}

func TestToRGBAConvertsOtherModels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	out := ToRGBA(src)
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got := out.RGBAAt(1, 1); got != want {
		t.Errorf("ToRGBA() pixel = %v, want %v", got, want)
	}
}

func TestToRGBANormalizesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 9))
	src.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})

	out := ToRGBA(src)
	if out.Bounds().Min != (image.Point{}) {
		t.Errorf("ToRGBA() origin = %v, want (0,0)", out.Bounds().Min)
	}
	if b := out.Bounds(); b.Dx() != 3 || b.Dy() != 4 {
		t.Errorf("ToRGBA() bounds = %dx%d, want 3x4", b.Dx(), b.Dy())
	}
	if got := out.RGBAAt(0, 0); got.R != 255 {
		t.Errorf("ToRGBA() pixel = %v, want the shifted source pixel", got)
	}
}

func TestToRGBAPassesThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if out := ToRGBA(src); out != src {
		t.Error("ToRGBA() copied an already-normalized raster")
	}
}
