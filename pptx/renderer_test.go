package pptx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestSlideToImage_BlankSlide(t *testing.T) {
	p := New()
	img, err := p.SlideToImage(0, nil)
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 960 || bounds.Dy() != 720 {
		t.Errorf("expected 960x720, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	r, g, b, _ := img.At(10, 10).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Error("blank slide should render white")
	}
}

func TestSlideToImage_DrawsPicture(t *testing.T) {
	p := New()
	p.GetLayout().SetCustomLayout(Inch(4), Inch(4))
	p.GetActiveSlide().CreateDrawingShape().
		SetImageData(solidPNG(t, 8, 8, color.NRGBA{R: 255, A: 255}), "image/png").
		SetBounds(Inch(1), Inch(1), Inch(2), Inch(2))

	img, err := p.SlideToImage(0, &RenderOptions{Width: 400})
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	if img.Bounds().Dy() != 400 {
		t.Fatalf("expected square output, got %v", img.Bounds())
	}
	r, g, b, _ := img.At(200, 200).RGBA()
	if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Errorf("centre pixel = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(20, 20).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Error("area outside the picture should stay white")
	}
}

func TestSlideToImage_OutOfRange(t *testing.T) {
	p := New()
	if _, err := p.SlideToImage(5, nil); err == nil {
		t.Error("expected error for out-of-range slide index")
	}
}

func TestSaveSlidesAsImages(t *testing.T) {
	p := New()
	p.CreateSlide()
	dir := t.TempDir()
	if err := p.SaveSlidesAsImages(filepath.Join(dir, "slide%02d.png"), nil); err != nil {
		t.Fatalf("SaveSlidesAsImages: %v", err)
	}
	for _, name := range []string{"slide01.png", "slide02.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if _, err := png.Decode(f); err != nil {
			t.Errorf("%s is not a PNG: %v", name, err)
		}
		f.Close()
	}
}

func TestFormatFromPath(t *testing.T) {
	if FormatFromPath("a.jpg") != ImageFormatJPEG || FormatFromPath("a.JPEG") != ImageFormatJPEG {
		t.Error("jpeg extensions should map to ImageFormatJPEG")
	}
	if FormatFromPath("a.png") != ImageFormatPNG || FormatFromPath("a") != ImageFormatPNG {
		t.Error("other extensions should map to ImageFormatPNG")
	}
}
