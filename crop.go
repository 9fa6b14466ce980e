package logogrid

import (
	"image"

	"github.com/disintegration/imaging"
)

// OpaqueBounds returns the smallest rectangle containing every pixel of img
// whose alpha is not zero. ok is false when all pixels are transparent.
func OpaqueBounds(img *image.NRGBA) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, off = x+1, off+4 {
			if img.Pix[off+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// AutoCrop trims the fully transparent border of img. An image that is
// transparent everywhere, or has no transparent border, is returned as is.
func AutoCrop(img *image.NRGBA) *image.NRGBA {
	r, ok := OpaqueBounds(img)
	if !ok || r == img.Bounds() {
		return img
	}
	return imaging.Crop(img, r)
}
