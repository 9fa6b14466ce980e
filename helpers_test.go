package logogrid

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	red   = color.NRGBA{200, 20, 20, 255}
)

// logoImage returns a w x h white image with a red rectangle of rw x rh at
// (x, y).
func logoImage(w, h, x, y, rw, rh int) *image.NRGBA {
	img := imaging.New(w, h, white)
	for py := y; py < y+rh; py++ {
		for px := x; px < x+rw; px++ {
			img.SetNRGBA(px, py, red)
		}
	}
	return img
}

func writeLogo(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return path
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
