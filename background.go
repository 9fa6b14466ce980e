package logogrid

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultThreshold is the per-channel value above which a pixel counts as
// white background.
const DefaultThreshold = 230

// RemoveBackground returns an NRGBA copy of img in which every pixel whose
// red, green and blue channels all exceed threshold is made fully
// transparent. RGB values are kept; only alpha changes. A channel equal to
// threshold is not white.
func RemoveBackground(img image.Image, threshold uint8) *image.NRGBA {
	dst := imaging.Clone(img)
	b := dst.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			if row[i] > threshold && row[i+1] > threshold && row[i+2] > threshold {
				row[i+3] = 0
			}
		}
	}
	return dst
}
