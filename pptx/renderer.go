package pptx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// RenderOptions configures slide-to-image rendering.
type RenderOptions struct {
	// Width is the output image width in pixels. Height is calculated from slide aspect ratio.
	// Default: 960
	Width int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// BackgroundColor overrides the white slide background.
	BackgroundColor *color.RGBA
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       960,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
	}
}

// FormatFromPath picks JPEG for .jpg/.jpeg paths and PNG otherwise.
func FormatFromPath(path string) ImageFormat {
	switch filepath.Ext(path) {
	case ".jpg", ".jpeg", ".JPG", ".JPEG":
		return ImageFormatJPEG
	default:
		return ImageFormatPNG
	}
}

// SlideToImage renders a single slide to an image.
func (p *Presentation) SlideToImage(slideIndex int, opts *RenderOptions) (image.Image, error) {
	if slideIndex < 0 || slideIndex >= len(p.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", slideIndex, len(p.slides)-1)
	}
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	width := opts.Width
	if width <= 0 {
		width = 960
	}

	slide := p.slides[slideIndex]
	slideW := float64(p.layout.CX)
	slideH := float64(p.layout.CY)
	imgW := width
	imgH := int(float64(imgW) * slideH / slideW)

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))

	bgColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.BackgroundColor != nil {
		bgColor = *opts.BackgroundColor
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bgColor}, image.Point{}, draw.Src)

	r := &renderer{
		img:    img,
		scaleX: float64(imgW) / slideW,
		scaleY: float64(imgH) / slideH,
	}
	for _, shape := range slide.shapes {
		r.renderShape(shape)
	}

	return img, nil
}

// SaveSlideAsImage renders a slide and saves it to a file.
func (p *Presentation) SaveSlideAsImage(slideIndex int, path string, opts *RenderOptions) error {
	img, err := p.SlideToImage(slideIndex, opts)
	if err != nil {
		return err
	}
	return saveImage(img, path, opts)
}

// SaveSlidesAsImages renders all slides and saves them to files.
// The pattern should contain %d for the slide number (1-based), e.g. "slide_%d.png".
func (p *Presentation) SaveSlidesAsImages(pattern string, opts *RenderOptions) error {
	for i := range p.slides {
		path := fmt.Sprintf(pattern, i+1)
		if err := p.SaveSlideAsImage(i, path, opts); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

func saveImage(img image.Image, path string, opts *RenderOptions) error {
	if opts == nil {
		opts = DefaultRenderOptions()
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(f, img)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// --- renderer ---

type renderer struct {
	img    *image.RGBA
	scaleX float64
	scaleY float64
}

func (r *renderer) renderShape(shape Shape) {
	if s, ok := shape.(*DrawingShape); ok {
		r.renderDrawing(s)
	}
}

func (r *renderer) emuToPixelX(emu int64) int {
	return int(float64(emu) * r.scaleX)
}

func (r *renderer) emuToPixelY(emu int64) int {
	return int(float64(emu) * r.scaleY)
}

func (r *renderer) renderDrawing(s *DrawingShape) {
	x := r.emuToPixelX(s.offsetX)
	y := r.emuToPixelY(s.offsetY)
	w := r.emuToPixelX(s.width)
	h := r.emuToPixelY(s.height)
	dstRect := image.Rect(x, y, x+w, y+h)

	data := s.data
	if data == nil && s.path != "" {
		var err error
		if data, err = os.ReadFile(s.path); err != nil {
			r.drawPlaceholder(dstRect)
			return
		}
	}
	if len(data) == 0 || w <= 0 || h <= 0 {
		return
	}

	srcImg, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		r.drawPlaceholder(dstRect)
		return
	}

	draw.CatmullRom.Scale(r.img, dstRect, srcImg, srcImg.Bounds(), draw.Over, nil)
}

// drawPlaceholder outlines a picture that could not be decoded.
func (r *renderer) drawPlaceholder(rect image.Rectangle) {
	c := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		r.setPixel(x, rect.Min.Y, c)
		r.setPixel(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		r.setPixel(rect.Min.X, y, c)
		r.setPixel(rect.Max.X-1, y, c)
	}
}

func (r *renderer) setPixel(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(r.img.Bounds()) {
		r.img.SetRGBA(x, y, c)
	}
}
