package logogrid

import (
	"image"

	"github.com/disintegration/imaging"
)

// FitSize scales a w0 x h0 image to cellHeight, then caps the width at
// cellWidth and recomputes the height from the same aspect ratio. Results
// are truncated to whole pixels and never drop below one pixel.
//
// FitSize panics if h0 is not positive; AutoCrop never produces such an
// image.
func FitSize(w0, h0, cellHeight, cellWidth int) (w, h int) {
	if h0 <= 0 {
		panic("logogrid: FitSize of an image with zero height")
	}
	aspect := float64(w0) / float64(h0)
	cw := float64(cellHeight) * aspect
	ch := float64(cellHeight)
	if cw > float64(cellWidth) {
		ch = ch * float64(cellWidth) / cw
		cw = float64(cellWidth)
	}
	return max(int(cw), 1), max(int(ch), 1)
}

// Resize scales img into the cell budget using FitSize and a Lanczos
// filter. It returns the resized image and its final size.
func Resize(img image.Image, cellHeight, cellWidth int) (*image.NRGBA, int, int) {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), cellHeight, cellWidth)
	return imaging.Resize(img, w, h, imaging.Lanczos), w, h
}
