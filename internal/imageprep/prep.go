// Package imageprep loads images and fits them to the easel before they
// are encoded.
package imageprep

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"easelprint/internal/easel"
	"easelprint/internal/palette"
)

// Load decodes the image at path. PNG, JPEG, GIF, BMP, TIFF and WebP are
// supported.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// ScaleToEasel resizes img to fit the canvas of the orientation that
// matches its aspect, keeping its proportions.
func ScaleToEasel(img image.Image, coords *easel.Coords) *image.NRGBA {
	src := img.Bounds()
	o := easel.Portrait
	if src.Dx() > src.Dy() {
		o = easel.Landscape
	}
	b := coords.BoundsFor(o)
	w, h := Fit(src.Dx(), src.Dy(), b.Dx(), b.Dy())

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// Fit returns the largest size with the proportions of w by h that fits in
// maxW by maxH. The result is never smaller than 1x1.
func Fit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	if w*maxH > h*maxW {
		return max(1, maxW), max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), max(1, maxH)
}

// Dither reduces img to the easel palette with Floyd-Steinberg error
// diffusion.
func Dither(img image.Image) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Palette())
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), img, b.Min)
	return dst
}
